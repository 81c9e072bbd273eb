//go:build !ios && !android && (amd64 || arm64)

package jvmtigo

import "github.com/okonech/jvmtigo/jvmsys"

// Thread is a borrowed view over a jthread reference. It is valid only
// within the callback or query that produced it; the VM owns the underlying
// thread object.
type Thread struct {
	env *Env
	raw jvmsys.JThread
}

// newThread wraps a jthread the native contract guarantees to be non-null.
func newThread(env *Env, raw jvmsys.JThread) Thread {
	if raw == 0 {
		panic("jvmtigo: thread reference is null")
	}
	return Thread{env: env, raw: raw}
}

// Raw returns the underlying jthread reference.
func (t Thread) Raw() uintptr {
	return uintptr(t.raw)
}

// ThreadInfo describes a thread at the time of the query.
type ThreadInfo struct {
	Name     string
	Priority int32
	Daemon   bool
	// Group is the thread's thread group.
	Group ThreadGroup
	// ContextClassLoader is nil-handled when the thread has none.
	ContextClassLoader Object
}

// Info queries the thread's name, priority, daemon status, group and context
// class loader.
func (t Thread) Info() (ThreadInfo, error) {
	raw, code := jvmsys.GetThreadInfo(t.env.raw, t.raw)
	if code != jvmsys.ErrNone {
		return ThreadInfo{}, jvmsys.New(code, "GetThreadInfo")
	}
	return ThreadInfo{
		Name:               raw.Name,
		Priority:           raw.Priority,
		Daemon:             raw.Daemon,
		Group:              ThreadGroup{env: t.env, raw: raw.Group},
		ContextClassLoader: Object{env: t.env, raw: raw.ContextClassLoader},
	}, nil
}

// ThreadGroup is a borrowed view over a jthreadGroup reference.
type ThreadGroup struct {
	env *Env
	raw jvmsys.JThreadGroup
}

// Raw returns the underlying jthreadGroup reference.
func (g ThreadGroup) Raw() uintptr {
	return uintptr(g.raw)
}

// IsNil reports whether the reference is null.
func (g ThreadGroup) IsNil() bool {
	return g.raw == 0
}

// ThreadGroupInfo describes a thread group at the time of the query.
type ThreadGroupInfo struct {
	// Parent is nil-handled for the top-level group.
	Parent      ThreadGroup
	Name        string
	MaxPriority int32
	Daemon      bool
}

// Info queries the group's name, parent, maximum priority and daemon status.
func (g ThreadGroup) Info() (ThreadGroupInfo, error) {
	raw, code := jvmsys.GetThreadGroupInfo(g.env.raw, g.raw)
	if code != jvmsys.ErrNone {
		return ThreadGroupInfo{}, jvmsys.New(code, "GetThreadGroupInfo")
	}
	return ThreadGroupInfo{
		Parent:      ThreadGroup{env: g.env, raw: raw.Parent},
		Name:        raw.Name,
		MaxPriority: raw.MaxPriority,
		Daemon:      raw.Daemon,
	}, nil
}
