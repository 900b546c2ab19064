// Package mocks provides hand-written test doubles for the store and
// service interfaces. Each mock exposes per-method function fields for
// customizable behavior and a map-backed default implementation for tests
// that only need a working in-memory fake.
package mocks
