package main

import (
	"testing"

	"github.com/mitchellh/go-ps"
	"github.com/stretchr/testify/assert"
)

type fakeProcess struct {
	pid, ppid int
	exe       string
}

func (p fakeProcess) Pid() int { return p.pid }
func (p fakeProcess) PPid() int { return p.ppid }
func (p fakeProcess) Executable() string { return p.exe }

func TestFindOtherInstance(t *testing.T) {
	procs := []ps.Process{
		fakeProcess{pid: 4, exe: "System"},
		fakeProcess{pid: 100, ppid: 4, exe: "explorer.exe"},
		fakeProcess{pid: 200, ppid: 100, exe: "vvpin.exe"},
	}

	assert.Equal(t, 0, findOtherInstance(procs, 200, "vvpin.exe"))

	procs = append(procs, fakeProcess{pid: 300, ppid: 100, exe: "VVPIN.EXE"})
	assert.Equal(t, 300, findOtherInstance(procs, 200, "vvpin.exe"))

	assert.Equal(t, 0, findOtherInstance(procs, 200, ""))
	assert.Equal(t, 0, findOtherInstance(nil, 200, "vvpin.exe"))
}
