// Package simutil holds the helpers used to plan and babysit a local
// beacon chain simulation.
//
// # Estimators
//
// EstimatedTimeInSecForRun, EstimatedTTD and EstimatedShanghaiTime turn a
// Preset and a plain configuration record into wall clock figures. They
// are pure arithmetic over their inputs.
//
// # Fork Schedule
//
// ForkSchedule orders named forks by activation epoch and stamps each one
// with the unix time of its first slot.
//
// # Process Handling
//
// ProcessHandler is handed the environment to stop explicitly instead of
// reaching for process wide state:
//
//	h := simutil.RegisterProcessHandler(env, logger)
//	defer h.Close()
//
//	go func() {
//	    defer h.Recover()
//	    ...
//	}()
//
//	<-h.Done()
package simutil
