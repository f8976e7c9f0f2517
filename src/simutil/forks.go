package simutil

import (
	mapset "github.com/deckarep/golang-set/v2"
	"gopkg.in/dnaeon/go-priorityqueue.v1"
)

// Fork is a named network upgrade activating at the start of Epoch.
type Fork struct {
	Name      string
	Epoch     int
	Timestamp int64 // unix seconds of the first slot of Epoch
}

// ForkSchedule hands out forks in activation order. Forks sharing an epoch
// come out in no particular order.
type ForkSchedule struct {
	preset         Preset
	genesisTime    int64
	secondsPerSlot int

	pq      *priorityqueue.PriorityQueue[string, int64]
	pending mapset.Set[string]
}

func NewForkSchedule(p Preset, genesisTime int64, secondsPerSlot int) (*ForkSchedule, error) {
	if secondsPerSlot <= 0 {
		return nil, ErrInvalidSlotDuration
	}
	return &ForkSchedule{
		preset:         p,
		genesisTime:    genesisTime,
		secondsPerSlot: secondsPerSlot,
		pq:             priorityqueue.New[string, int64](priorityqueue.MinHeap),
		pending:        mapset.NewSet[string](),
	}, nil
}

// Add schedules name at epoch. Adding a pending name again moves it.
func (fs *ForkSchedule) Add(name string, epoch int) {
	if fs.pending.Contains(name) {
		fs.pq.Update(name, int64(epoch))
		return
	}
	fs.pending.Add(name)
	fs.pq.Put(name, int64(epoch))
}

func (fs *ForkSchedule) Len() int {
	return fs.pq.Len()
}

// Next removes and returns the earliest pending fork.
func (fs *ForkSchedule) Next() (Fork, bool) {
	if fs.pq.Len() == 0 {
		return Fork{}, false
	}
	item := fs.pq.Get()
	fs.pending.Remove(item.Value)
	return Fork{
		Name:      item.Value,
		Epoch:     int(item.Priority),
		Timestamp: fs.epochStart(item.Priority),
	}, true
}

// Drain returns every pending fork in activation order and empties the
// schedule.
func (fs *ForkSchedule) Drain() []Fork {
	forks := make([]Fork, 0, fs.pq.Len())
	for f, ok := fs.Next(); ok; f, ok = fs.Next() {
		forks = append(forks, f)
	}
	return forks
}

func (fs *ForkSchedule) epochStart(epoch int64) int64 {
	return fs.genesisTime + epoch*int64(fs.preset.SlotsPerEpoch*fs.secondsPerSlot)
}
