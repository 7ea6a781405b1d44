package main

import (
	"os"
	"strings"

	"github.com/mitchellh/go-ps"
)

// otherInstance returns the PID of another running process with the same
// executable name as this one, or 0.
func otherInstance() (int, error) {
	self := os.Getpid()

	me, err := ps.FindProcess(self)
	if err != nil {
		return 0, err
	}
	if me == nil {
		return 0, nil
	}

	procs, err := ps.Processes()
	if err != nil {
		return 0, err
	}

	return findOtherInstance(procs, self, me.Executable()), nil
}

func findOtherInstance(procs []ps.Process, self int, exe string) int {
	if exe == "" {
		return 0
	}

	for _, p := range procs {
		if p == nil || p.Pid() == self {
			continue
		}
		if strings.EqualFold(p.Executable(), exe) {
			return p.Pid()
		}
	}
	return 0
}
