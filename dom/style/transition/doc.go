/*
Package transition animates changes of resolved attribute values.

A Table keeps the state of running transitions, keyed by node identity and
attribute name. Clients call Advance once per frame for every attribute of
every visited node, passing the attribute's resolved target value, its
declared transition and the time elapsed since the last frame. Advance
returns the value to display.

For every key the table is in one of two states:

	Idle    the displayed value equals the last target value
	Active  the displayed value moves from a start value towards the target

A change of the target value starts a transition if the attribute declares
a transition with a positive duration; otherwise the new value is displayed
immediately. A change during a running transition starts a new transition
from the currently displayed value. A transition ends when its duration has
elapsed, displaying the target value exactly.

Values which cannot be interpolated (e.g., lengths of different units)
snap to their target. This is reported to an optional handler, but is never
an error.

A Table is not safe for concurrent use. Hosts evaluating independent
subtrees concurrently use one table per subtree.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package transition

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'uistyle.transition'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.transition")
}
