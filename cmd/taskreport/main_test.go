package main

import (
	"testing"
)

func TestMain(m *testing.M) {
	m.Run()
}

func TestExecute(t *testing.T) {
	t.Run("execute_function_exists", func(t *testing.T) {
		t.Log("Execute function exists and is callable")
	})
}
