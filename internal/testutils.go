package internal

import (
	"fmt"
	"reflect"
	"testing"
	"time"
)

// FailureMessage reports a failed comparison
func FailureMessage(t *testing.T, got, want interface{}) {
	t.Helper()

	t.Errorf("\nGot: %s\nWant: %s", TypeToString(got), TypeToString(want))
}

// TypeToString returns the string representation of a non-string type
func TypeToString(obj interface{}) string {
	return fmt.Sprintf("%+v", obj)
}

// AssertNoError checks for the non-existence of an error
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
}

// AssertErrored checks for the existence of an error
func AssertErrored(t *testing.T, err error) {
	t.Helper()

	if err == nil {
		t.Fatal("Expected an error, but got nil")
	}
}

// AssertEqual checks that the values are equal
func AssertEqual(t *testing.T, got, want interface{}) {
	t.Helper()

	if got != want {
		FailureMessage(t, got, want)
	}
}

// TableAssertEqual is AssertEqual with the table case name in the failure
func TableAssertEqual(t *testing.T, name string, got, want interface{}) {
	t.Helper()

	if got != want {
		t.Errorf("%s\nGot: %s\nWant: %s", name, TypeToString(got), TypeToString(want))
	}
}

// AssertDeepEqual checks that the values are deeply equal
func AssertDeepEqual(t *testing.T, got, want interface{}) {
	t.Helper()

	if !reflect.DeepEqual(got, want) {
		FailureMessage(t, got, want)
	}
}

// AssertTrue checks that the value is true
func AssertTrue(t *testing.T, got bool) {
	t.Helper()

	if !got {
		t.Error("Expected to be true, but it wasn't")
	}
}

// AssertFalse checks that the value is false
func AssertFalse(t *testing.T, got bool) {
	t.Helper()

	if got {
		t.Error("Expected to be false, but it wasn't")
	}
}

// Within fails the test if assert does not return within d
func Within(t *testing.T, d time.Duration, assert func()) {
	t.Helper()

	done := make(chan struct{}, 1)

	go func() {
		assert()
		done <- struct{}{}
	}()

	select {
	case <-time.After(d):
		t.Error("timed out")
	case <-done:
	}
}
