package main

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/anthem-go/anthem/internal/analyze"
	"github.com/anthem-go/anthem/internal/asp"
)

var analyzeProperty string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [FILE]",
	Short: "analyze a program without translating it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if analyzeProperty != "tightness" {
			return fatalf("unknown --property %q (expected \"tightness\")", analyzeProperty)
		}
		program, err := readProgram(args)
		if err != nil {
			return err
		}
		return runAnalyzeTightness(program)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeProperty, "property", "", "property to analyze (tightness)")
	analyzeCmd.MarkFlagRequired("property")
}

func runAnalyzeTightness(program asp.Program) error {
	graph := analyze.BuildPositiveDependencyGraph(program)
	renderDependencyTree(graph)

	if analyze.Tight(program) {
		pterm.Success.Println("the program is tight")
		return nil
	}
	pterm.Error.Println("the program is not tight: the positive dependency graph has a cycle")
	return fatalf("not tight")
}

// renderDependencyTree prints graph as a pterm tree, one root per
// predicate with its positive-dependency successors as children.
func renderDependencyTree(graph *analyze.Graph) {
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return
	}
	var children []pterm.TreeNode
	for _, v := range vertices {
		node := pterm.TreeNode{Text: v.String()}
		for _, succ := range graph.Successors(v) {
			node.Children = append(node.Children, pterm.TreeNode{Text: succ.String()})
		}
		children = append(children, node)
	}
	root := pterm.TreeNode{Text: "positive dependency graph", Children: children}
	pterm.DefaultTree.WithRoot(root).Render()
}
