package main

import "testing"

func TestRunSkipsServeUnderTest(t *testing.T) {
	isTest = true
	defer func() { isTest = false }()

	called := false
	orig := runServer
	runServer = func() { called = true }
	defer func() { runServer = orig }()

	main()
	run()

	if called {
		t.Fatal("serve must not start while under test")
	}
}
