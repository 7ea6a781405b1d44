package main

import (
	"github.com/shu-go/nmfmt"
	"github.com/shu-go/rog"
)

// logger formats with nmfmt placeholders ($name) and writes through rog.
type logger struct {
	debug bool
	print func(v ...interface{})
}

func newLogger(debug bool) logger {
	return logger{debug: debug, print: rog.Print}
}

func (l logger) printf(format string, m nmfmt.M) {
	if l.print == nil {
		return
	}
	l.print(nmfmt.Sprintf(format, m))
}

func (l logger) debugf(format string, m nmfmt.M) {
	if !l.debug {
		return
	}
	l.printf(format, m)
}

func (l logger) println(s string) {
	if l.print == nil {
		return
	}
	l.print(s)
}
