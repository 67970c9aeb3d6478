// Package framework contains the execution core that every dialect is layered on.
//
// The general model is:
//
// 1. An Engine owns a tree of suite nodes rooted at a synthetic "ROOT" node, and a cursor
// pointing at the current node. Group pushes a child node, runs the group body synchronously
// so that everything registered inside it attaches to that node, then pops it again.
//
// 2. Case runs a test body immediately against the current node, surrounded by the node's
// hooks. Failures inside a case are caught and turned into results; they never abort the run.
//
// 3. Progress is reported through a TestLogger. ConsoleTestLogger writes the line-oriented
// protocol that host runners parse to reconstruct pass/fail counts.
//
// The dialect package provides the domain-flavored names on top of this; the mock and
// assertion packages provide the values that case bodies interact with.
package framework
