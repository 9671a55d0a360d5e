// Package hooks implements the hook installation pipeline.
//
// Source hooks live under <project-root>/.husky/hooks, one file per git
// hook name. During a build the installer copies each recognized hook
// into <git-dir>/hooks, prepending a provenance header and marking the
// result executable.
//
// # Pipeline
//
// [Install] runs the whole pipeline: resolve the git directory, compute
// source and destination directories, enumerate source entries, then for
// each admitted entry check the installation guard, inject the header,
// and write the executable file.
//
// # Idempotency
//
// Every installed hook carries the marker line "This hook was set by
// husky-rs" in its header. A destination file containing the marker is
// left untouched on subsequent runs, so repeated installation is a
// no-op. A destination file without the marker is overwritten; keeping
// foreign hooks alive is explicitly not attempted.
//
// # Failure policy
//
// "Expected absence" is absorbed: no git checkout and no .husky/hooks
// directory both terminate successfully, because many builds legitimately
// run outside a repository. Content problems are not absorbed: a source
// hook that is empty after trimming whitespace fails the build, since a
// silently skipped hook would hide an authoring mistake.
package hooks
