/*
Package domdbg implements helpers to debug a document tree.

Dump prints a document as an indented tree, annotating every element with
its position among all siblings and among the siblings of its tag, the two
positions selectors count with. ToGraphViz writes the same tree as a
GraphViz (DOT) diagram, optionally with the properties injected into each
element.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/propsel/dom"
	"github.com/npillmayer/propsel/registry"
	tp "github.com/xlab/treeprint"
)

// Dump renders a document tree with sibling positions, e.g.
//
//	.
//	└── #document
//	    └── form [0] @0
//	        ├── label [0] @0
//	        └── input [1] @0
func Dump(doc *dom.Node) string {
	p := tp.New()
	ppt(p, doc)
	return p.String()
}

func ppt(p tp.Tree, n *dom.Node) {
	if n.ChildCount() == 0 {
		p.AddNode(label(n))
		return
	}
	branch := p.AddBranch(label(n))
	for _, ch := range n.Children() {
		ppt(branch, ch)
	}
}

func label(n *dom.Node) string {
	parent := n.Parent()
	if parent == nil {
		return n.Payload.Tag
	}
	ordinal, ofType := position(n)
	return fmt.Sprintf("%s [%d] @%d", n.Payload.Tag, ordinal, ofType)
}

// position returns the ordinal of n among its siblings and among the
// siblings of its tag.
func position(n *dom.Node) (ordinal, ofType int) {
	for _, sib := range n.Parent().Children() {
		if sib == n {
			return
		}
		ordinal++
		if sib.Payload.Tag == n.Payload.Tag {
			ofType++
		}
	}
	return
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname      string
	NodeTmpl      *template.Template
	EdgeTmpl      *template.Template
	InjectionTmpl *template.Template
	InjEdgeTmpl   *template.Template
}

type node struct {
	N    *dom.Node
	Name string
}

func (n node) Label() string {
	tag := dotEscaper.Replace(n.N.Payload.Tag)
	if n.N.Parent() == nil {
		return tag
	}
	ordinal, ofType := position(n.N)
	return fmt.Sprintf("%s\\n[%d] @%d", tag, ordinal, ofType)
}

// dotEscaper escapes text for quoted DOT strings.
var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

type edge struct {
	N1, N2 node
}

type injectionGroup struct {
	Name       string
	Properties []registry.Property
}

// ToGraphViz outputs a diagram for a document tree in GraphViz (DOT)
// format. If injections are given, every element receiving properties is
// connected to a box listing them.
func ToGraphViz(doc *dom.Node, w io.Writer, injections []dom.Injection) error {
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.InjectionTmpl = template.Must(template.New("injection").Parse(injectionTmpl))
	gparams.InjEdgeTmpl = template.Must(template.New("injedge").Parse(injEdgeTmpl))
	tmpl := template.Must(template.New("dom").Parse(graphHeadTmpl))
	if err := tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*dom.Node]string, 256)
	if err := nodes(doc, w, dict, &gparams); err != nil {
		return err
	}
	byNode := make(map[*dom.Node][]registry.Property)
	var order []*dom.Node
	for _, inj := range injections {
		if _, seen := byNode[inj.Node]; !seen {
			order = append(order, inj.Node)
		}
		byNode[inj.Node] = append(byNode[inj.Node], inj.Property)
	}
	for i, n := range order {
		name, ok := dict[n]
		if !ok {
			continue
		}
		g := injectionGroup{Name: fmt.Sprintf("inj%05d", i+1), Properties: byNode[n]}
		if err := gparams.InjectionTmpl.Execute(w, g); err != nil {
			return err
		}
		if err := gparams.InjEdgeTmpl.Execute(w, [2]string{name, g.Name}); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte("}\n"))
	return err
}

func nodes(n *dom.Node, w io.Writer, dict map[*dom.Node]string, gparams *graphParamsType) error {
	name := fmt.Sprintf("node%05d", len(dict)+1)
	dict[n] = name
	if err := gparams.NodeTmpl.Execute(w, node{n, name}); err != nil {
		return err
	}
	for _, ch := range n.Children() {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		e := edge{node{n, name}, node{ch, dict[ch]}}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ .Name }}	[ label="{{ .Label }}" shape=ellipse style=filled fillcolor=lightblue3 ] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const injectionTmpl = `{{ .Name }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">injected</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Name | html }}:</td><td>{{ .Target | html }}</td></tr>
      {{ end }}
    </table>> ] ;
`

const injEdgeTmpl = `{{ index . 0 }} -> {{ index . 1 }} [dir=none weight=1 style="dashed"] ;
`
