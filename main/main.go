package main

import (
	"log"
	"os"
)

// logFile redirects the standard logger to a config's LogFile until Close is
// called.
type logFile struct {
	f *os.File
}

func openLogFile(name string) (*logFile, error) {
	if name == "" {
		return &logFile{}, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return &logFile{f}, nil
}

func (lf *logFile) Close() {
	if lf.f == nil {
		return
	}
	log.SetOutput(os.Stderr)
	if err := lf.f.Close(); err != nil {
		log.Fatal(err.Error())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err.Error())
	}
}
