/*
Package domdbg implements helpers to debug styled trees and style sheets.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/uistyle/dom/style"
	"github.com/npillmayer/uistyle/dom/styledtree"
	"github.com/npillmayer/uistyle/dom/w3cdom"
	"github.com/npillmayer/uistyle/tree"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
}

var defaultGroups = []string{
	style.PGDimension,
	style.PGMargins,
	style.PGPadding,
	style.PGColor,
}

// ToGraphViz outputs a diagram for a styled tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the tree, a Writer, and an optional list of attribute groups.
// The diagram will include the displayed values of all attributes belonging
// to one of the groups.
//
// If the client does not provide a list of attribute groups, the following
// default will be used:
//
//   - Dimension
//   - Margins
//   - Padding
//   - Color
func ToGraphViz(root *tree.Node[*styledtree.StyNode], w io.Writer, styleGroups []string) error {
	tmpl, err := template.New("tree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("node").Parse(nodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[w3cdom.NodeID]string, 256)
	err = tree.TopDown(root, func(n *tree.Node[*styledtree.StyNode], chain []*tree.Node[*styledtree.StyNode]) error {
		sn := styledtree.Node(n)
		if sn == nil || sn.UINode() == nil {
			return tree.SkipChildren
		}
		if err := styledNode(sn, w, dict, &gparams); err != nil {
			return err
		}
		if len(chain) > 1 {
			parent := styledtree.Node(chain[len(chain)-2])
			e := edge{dict[parent.UINode().ID()], dict[sn.UINode().ID()]}
			return gparams.EdgeTmpl.Execute(w, e)
		}
		return nil
	})
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a styled tree and a testing.T, it
// will create a Graphviz image of the tree and write it to a file in the
// current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(root *tree.Node[*styledtree.StyNode], t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "styled.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing styled tree digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(root, tmpfile, nil); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing styled tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	Label string
	Name  string
}

type attribute struct {
	Key, Value string
}

type attrGroup struct {
	ID         string
	Name       string
	Attributes []attribute
}

type edge struct {
	N1, N2 string
}

func styledNode(sn *styledtree.StyNode, w io.Writer, dict map[w3cdom.NodeID]string,
	gparams *graphParamsType) error {
	//
	id := sn.UINode().ID()
	name := fmt.Sprintf("node%05d", len(dict)+1)
	dict[id] = name
	if err := gparams.NodeTmpl.Execute(w, node{Label: label(sn.UINode()), Name: name}); err != nil {
		return err
	}
	for _, g := range gparams.StyleGroups {
		pg := attrGroup{ID: fmt.Sprintf("%s_%s", name, g), Name: g}
		for _, a := range sn.Attributes() {
			if style.GroupNameFromAttribute(a) == g {
				pg.Attributes = append(pg.Attributes, attribute{a, sn.Value(a).String()})
			}
		}
		if len(pg.Attributes) == 0 {
			continue
		}
		if err := gparams.StylegroupTmpl.Execute(w, pg); err != nil {
			return err
		}
		if err := gparams.PgedgeTmpl.Execute(w, edge{name, pg.ID}); err != nil {
			return err
		}
	}
	return nil
}

// label returns a short, selector-like description of a node.
func label(n w3cdom.Node) string {
	var b strings.Builder
	b.WriteString(n.NodeName())
	for _, c := range n.Classes() {
		b.WriteByte('.')
		b.WriteString(c)
	}
	for _, t := range n.Tags() {
		b.WriteByte(':')
		b.WriteString(t)
	}
	return b.String()
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const nodeTmpl = `{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
`

const styleGroupTmpl = `{{ .ID }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Attributes }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
`

const edgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .N1 }} -> {{ .N2 }} [dir=none weight=1 style="dashed"] ;
`
