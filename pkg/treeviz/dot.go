// Package treeviz renders relation trees as Graphviz diagrams.
//
// This is a debugging aid for manifest authors: before spending a
// generation run, render the manifest's relation tree to check that anchors,
// directions, and distance classes are wired the way you meant.
package treeviz

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/scenegen/scenegen/pkg/manifest"
)

// ToDOT converts a manifest's relation tree to Graphviz DOT format.
// The surface is drawn as a filled box; anchored children connect to it with
// anchor-labeled edges, relative children to their parents with
// direction-labeled edges (distance class appended when not "any").
func ToDOT(m *manifest.Manifest) string {
	var buf bytes.Buffer
	buf.WriteString("digraph scene {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [fillcolor=lightgrey, label=%q];\n", m.Surface.Name, m.Surface.Name)
	for _, obj := range m.Objects {
		fmt.Fprintf(&buf, "  %q;\n", obj.Name)
	}

	buf.WriteString("\n")
	for _, obj := range m.Objects {
		from, label := edge(m, obj)
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", from, obj.Name, label)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// edge computes the source node and label for an object's incoming edge.
func edge(m *manifest.Manifest, obj manifest.ObjectSpec) (from, label string) {
	if obj.Parent == "" || obj.Parent == m.Surface.Name {
		anchor := obj.Anchor
		if anchor == "" {
			anchor = "center"
		}
		return m.Surface.Name, anchor
	}

	dirs := obj.Directions
	if len(dirs) == 0 {
		dirs = []string{obj.Direction}
	}
	label = strings.Join(dirs, " | ")
	if obj.Distance != "" && obj.Distance != "any" {
		label += " (" + obj.Distance + ")"
	}
	return obj.Parent, label
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
