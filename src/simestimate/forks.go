package main

import (
	"fmt"
	"strconv"
	"strings"
)

type forkEpoch struct {
	name  string
	epoch int
}

// parseForks reads whitespace separated name=epoch pairs.
func parseForks(s string) ([]forkEpoch, error) {
	var forks []forkEpoch
	for _, f := range strings.Fields(s) {
		name, value, ok := strings.Cut(f, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid fork %q, expected name=epoch", f)
		}
		epoch, err := strconv.Atoi(value)
		if err != nil || epoch < 0 {
			return nil, fmt.Errorf("invalid epoch for fork %q", f)
		}
		forks = append(forks, forkEpoch{name: name, epoch: epoch})
	}
	return forks, nil
}
