// Package main provides the aspectarian CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"aspectarian"
	"aspectarian/aspect"
	"aspectarian/bodymatch"
	"aspectarian/chart"
	"aspectarian/interp"
	"aspectarian/report"
)

// Version is the current aspectarian CLI version
var Version = "0.3.1"

var rootCmd = &cobra.Command{
	Use:     "aspectarian",
	Short:   "Aspectarian - aspect pattern detection for astrological charts",
	Long:    `Aspectarian reads a chart of bodies with ecliptic longitudes, finds every pairwise aspect within orb, and classifies the named patterns they form (grand trines, t-squares, yods, kites and the rest).`,
	Version: Version,
}

var detectCmd = &cobra.Command{
	Use:   "detect <chart-file>",
	Short: "Run the full pattern detection pipeline over a chart",
	Long: `Run the full detection pipeline over a chart file (JSON or YAML).

Output lists each connected component with the patterns found in it,
then the aspects no pattern absorbed, minor links, unpatterned bodies
and groups of patterns joined by minor links.

Examples:
  aspectarian detect natal.yaml
  aspectarian detect natal.json --json
  aspectarian detect natal.yaml --catalog orbs.yaml --bodies planets-only.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

var aspectsCmd = &cobra.Command{
	Use:   "aspects <chart-file>",
	Short: "List the pairwise aspects detected in a chart",
	Args:  cobra.ExactArgs(1),
	RunE:  runAspects,
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the active aspect catalog",
	RunE:  runCatalog,
}

var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint <chart-file>",
	Short: "Print the chart's content fingerprint",
	Args:  cobra.ExactArgs(1),
	RunE:  runFingerprint,
}

var (
	detectJSON        bool
	detectCatalog     string
	detectBodies      string
	mergeConjunctions bool

	aspectsJSON    bool
	aspectsMinor   bool
	aspectsCatalog string

	catalogPath string
)

func init() {
	detectCmd.Flags().BoolVar(&detectJSON, "json", false, "Output the report as JSON")
	detectCmd.Flags().StringVar(&detectCatalog, "catalog", "", "Aspect catalog YAML file (replaces the built-in table)")
	detectCmd.Flags().StringVar(&detectBodies, "bodies", "", "Body include/exclude rules YAML file")
	detectCmd.Flags().BoolVar(&mergeConjunctions, "merge-conjunctions", true, "Treat conjunction clusters as one unit during classification")

	aspectsCmd.Flags().BoolVar(&aspectsJSON, "json", false, "Output the edge list as JSON")
	aspectsCmd.Flags().BoolVar(&aspectsMinor, "minor", false, "Include minor-category aspects")
	aspectsCmd.Flags().StringVar(&aspectsCatalog, "catalog", "", "Aspect catalog YAML file (replaces the built-in table)")

	catalogCmd.Flags().StringVar(&catalogPath, "catalog", "", "Aspect catalog YAML file to print instead of the built-in table")

	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(aspectsCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(fingerprintCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runDetect(cmd *cobra.Command, args []string) error {
	ch, err := chart.LoadFile(args[0])
	if err != nil {
		return err
	}

	opts, err := detectOptions()
	if err != nil {
		return err
	}

	rep, err := aspectarian.Compute(ch, opts...)
	if err != nil {
		return err
	}

	if detectJSON {
		return rep.WriteJSON(os.Stdout)
	}

	printReport(rep)
	return nil
}

func detectOptions() ([]aspectarian.Option, error) {
	var opts []aspectarian.Option

	if detectCatalog != "" {
		cat, err := aspect.LoadCatalog(detectCatalog)
		if err != nil {
			return nil, err
		}
		opts = append(opts, aspectarian.WithCatalog(cat))
	}
	if detectBodies != "" {
		matcher, err := bodymatch.LoadRules(detectBodies)
		if err != nil {
			return nil, err
		}
		opts = append(opts, aspectarian.WithBodyRules(matcher.Rules()))
	}
	if !mergeConjunctions {
		opts = append(opts, aspectarian.WithoutConjunctionMerge())
	}
	return opts, nil
}

func printReport(rep *report.Report) {
	fmt.Printf("Chart %s\n", shortKey(rep.ChartKey))
	fmt.Printf("Bodies: %d   Components: %d   Patterns: %d\n",
		len(rep.Bodies), len(rep.Components), len(rep.Patterns))

	for ci, nodes := range rep.Components {
		fmt.Println()
		fmt.Printf("Component %d: %s\n", ci+1, joinLabels(nodes))

		found := false
		for pi, p := range rep.Patterns {
			if p.Component != ci {
				continue
			}
			found = true
			fmt.Printf("  [%d] %s\n", pi+1, interp.Describe(p))
			for _, e := range p.Edges {
				fmt.Printf("      %s\n", interp.DescribeEdge(e))
			}
		}
		if !found && len(nodes) > 1 {
			fmt.Println("  no named patterns")
		}
	}

	if len(rep.Residuals) > 0 {
		fmt.Println()
		fmt.Println("Unpatterned aspects:")
		for _, e := range rep.Residuals {
			fmt.Printf("  %s\n", interp.DescribeEdge(e))
		}
	}

	if len(rep.MinorLinks) > 0 {
		fmt.Println()
		fmt.Println("Minor links:")
		for _, l := range rep.MinorLinks {
			fmt.Printf("  %s%s\n", interp.DescribeEdge(l.Edge), linkRefs(l))
		}
	}

	if len(rep.Singletons) > 0 {
		fmt.Println()
		fmt.Printf("Unpatterned bodies: %s\n", strings.Join(rep.Singletons, ", "))
	}

	if len(rep.Groups) > 0 {
		fmt.Println()
		for _, g := range rep.Groups {
			fmt.Printf("Linked patterns: %s\n", joinIndices(g))
		}
	}
}

func runAspects(cmd *cobra.Command, args []string) error {
	ch, err := chart.LoadFile(args[0])
	if err != nil {
		return err
	}

	cat, err := loadCatalogOrDefault(aspectsCatalog)
	if err != nil {
		return err
	}

	edges, err := aspect.Find(ch, cat)
	if err != nil {
		return err
	}
	if !aspectsMinor {
		edges = aspect.Majors(edges)
	}

	if aspectsJSON {
		data, err := json.MarshalIndent(edges, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding edges: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	for _, e := range edges {
		motion := ""
		if e.Motion != "" {
			motion = "  " + strings.ToLower(string(e.Motion))
		}
		fmt.Printf("%-14s %-13s %-14s sep %7.2f°  orb %+6.2f°%s\n",
			e.A, e.Name, e.B, e.Separation, e.Deviation, motion)
	}
	return nil
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalogOrDefault(catalogPath)
	if err != nil {
		return err
	}

	for _, d := range cat.Definitions() {
		fmt.Printf("%-2s %-13s %8.3f°  orb %.1f°  %-6s %s\n",
			d.Glyph, d.Name, d.Angle, d.Orb, d.Category, d.Style)
	}
	return nil
}

func runFingerprint(cmd *cobra.Command, args []string) error {
	ch, err := chart.LoadFile(args[0])
	if err != nil {
		return err
	}

	key, err := ch.Key()
	if err != nil {
		return err
	}
	fmt.Println(key)
	return nil
}

func loadCatalogOrDefault(path string) (*aspect.Catalog, error) {
	if path == "" {
		return aspect.DefaultCatalog(), nil
	}
	return aspect.LoadCatalog(path)
}

// linkRefs formats the pattern indices a minor link touches, 1-based to
// match the printed pattern numbering.
func linkRefs(l report.MinorLink) string {
	var refs []int
	for _, r := range l.APatterns {
		refs = appendUnique(refs, r)
	}
	for _, r := range l.BPatterns {
		refs = appendUnique(refs, r)
	}
	if len(refs) == 0 {
		return ""
	}
	sort.Ints(refs)
	return "  [patterns " + joinIndices(refs) + "]"
}

func joinIndices(idx []int) string {
	parts := make([]string, len(idx))
	for i, r := range idx {
		parts[i] = strconv.Itoa(r + 1)
	}
	return strings.Join(parts, ", ")
}

func appendUnique(refs []int, r int) []int {
	for _, x := range refs {
		if x == r {
			return refs
		}
	}
	return append(refs, r)
}

func joinLabels(names []string) string {
	labels := make([]string, len(names))
	for i, n := range names {
		labels[i] = interp.Label(n)
	}
	return strings.Join(labels, ", ")
}

func shortKey(key string) string {
	if len(key) <= 12 {
		return key
	}
	return key[:12]
}
