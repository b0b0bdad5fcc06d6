package domain

// Identity names one build job for log prefixing. No two tasks in a
// batch may share an identity; the expander's naming rule guarantees it.
type Identity struct {
	Name string
	Mode string
}

// Prefix returns the log prefix every output line of this task carries.
func (id Identity) Prefix() string {
	return "[build:" + id.Name + "-" + id.Mode + "]"
}

// String returns the identity in name-mode form.
func (id Identity) String() string {
	return id.Name + "-" + id.Mode
}

// TaskDescriptor describes one build job: the full argument vector, a
// private environment snapshot and the identity used for log prefixing.
// Immutable once created; consumed exactly once by the task runner.
type TaskDescriptor struct {
	// Args is the complete argument vector, Args[0] being the executable.
	Args []string

	// Env is this task's own copy of the environment in KEY=VALUE form.
	// Copied per task so no task can observe another's modifications.
	Env []string

	Identity Identity
}

// TaskOutcome records how one task ended. Only the identity and the exit
// status are retained; the task's output has already been streamed.
type TaskOutcome struct {
	Identity Identity

	// ExitCode is the subprocess exit code, or -1 if it never started.
	ExitCode int

	// Err is set only when the subprocess could not be started or was
	// aborted by the runtime. A non-zero exit alone does not set it.
	Err error
}

// Failed reports whether this task counts as failed for phase gating.
func (o TaskOutcome) Failed() bool {
	return o.Err != nil || o.ExitCode != 0
}

// BatchResult is the ordered collection of outcomes for one scheduling
// batch, in task-submission order.
type BatchResult []TaskOutcome

// OK reports whether every task in the batch succeeded.
func (b BatchResult) OK() bool {
	for _, o := range b {
		if o.Failed() {
			return false
		}
	}
	return true
}

// FirstFailure returns the submission index of the first failing outcome.
func (b BatchResult) FirstFailure() (int, bool) {
	for i, o := range b {
		if o.Failed() {
			return i, true
		}
	}
	return 0, false
}

// FailedIdentities lists every failing task's identity in submission order.
func (b BatchResult) FailedIdentities() []string {
	var ids []string
	for _, o := range b {
		if o.Failed() {
			ids = append(ids, o.Identity.String())
		}
	}
	return ids
}
