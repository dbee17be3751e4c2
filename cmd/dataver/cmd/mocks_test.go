// Copyright © 2026 One Concern

package cmd

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type ExitMocks struct {
	exitStatuses []int
}

func (m *ExitMocks) Fatalf(format string, v ...interface{}) {
	fmt.Printf(format+"\n", v...)
	m.exitStatuses = append(m.exitStatuses, 1)
}

func (m *ExitMocks) Fatalln(v ...interface{}) {
	fmt.Println(v...)
	m.exitStatuses = append(m.exitStatuses, 1)
}

func (m *ExitMocks) Exit(code int) {
	m.exitStatuses = append(m.exitStatuses, code)
}

func (m *ExitMocks) fatalCalls() int {
	return len(m.exitStatuses)
}

var exitMocks *ExitMocks

func setupTests(t *testing.T) string {
	exitMocks = &ExitMocks{exitStatuses: make([]int, 0)}
	logFatalf = exitMocks.Fatalf
	logFatalln = exitMocks.Fatalln
	osExit = exitMocks.Exit
	return t.TempDir()
}

func runCmd(t *testing.T, storePath string, cmd []string, intentMsg string, expectError bool) {
	fatalCallsBefore := exitMocks.fatalCalls()

	params = flagsT{}
	args := append(cmd, "--store", storePath,
		"--name", "tester", "--email", "tester@oneconcern.com")
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute(), "error executing '"+strings.Join(cmd, " ")+"' : "+intentMsg)
	if expectError {
		require.Equal(t, fatalCallsBefore+1, exitMocks.fatalCalls(),
			"ran '"+strings.Join(cmd, " ")+"' expecting error and didn't see one in mocks : "+intentMsg)
	} else {
		require.Equal(t, fatalCallsBefore, exitMocks.fatalCalls(),
			"unexpected error in mocks on '"+strings.Join(cmd, " ")+"' : "+intentMsg)
	}
}
