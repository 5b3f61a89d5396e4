package cascade

import (
	"fmt"

	"github.com/npillmayer/uistyle/dom/style/cssom"
)

// Specificity is the weight of a selector, used to break ties between
// matching rules. Specificities compare lexicographically: pseudo-tags
// weigh more than classes, classes more than element names.
type Specificity struct {
	Tags     int // number of pseudo-tags
	Classes  int // number of classes
	Elements int // number of element names; wildcards do not count
}

// Compare returns -1, 0 or +1, depending on whether s is less than, equal
// to or greater than other.
func (s Specificity) Compare(other Specificity) int {
	a := [3]int{s.Tags, s.Classes, s.Elements}
	b := [3]int{other.Tags, other.Classes, other.Elements}
	for i := range a {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// Less returns true if s < other (strictly), false otherwise.
func (s Specificity) Less(other Specificity) bool {
	return s.Compare(other) < 0
}

func (s Specificity) add(e cssom.ElementSelector) Specificity {
	if e.Tag != "" {
		s.Tags++
	}
	s.Classes += len(e.Classes)
	if e.Element != "" && e.Element != cssom.Wildcard {
		s.Elements++
	}
	return s
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s.Tags, s.Classes, s.Elements)
}

// SpecificityOf computes the specificity of a selector. It does not depend
// on the nodes a selector is matched against.
func SpecificityOf(sel cssom.Selector) Specificity {
	var s Specificity
	for _, seg := range sel.Segments {
		s = s.add(seg.Element)
	}
	return s.add(sel.Target)
}
