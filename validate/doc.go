// Copyright (c) 2025 Taskmint.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validate is the gate in front of rendering and submission.

Checks never panic and never perform I/O; the only output is a Report.
Hard errors (missing task, id, data, selection; malformed or out-of-range
annotations) set IsValid=false and block submission. Soft warnings (media
references without a URL scheme, very short text) are logged by callers and
never block.
*/
package validate
