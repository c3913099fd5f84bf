package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/catalog"
)

type skillsOptions struct {
	category string
	search   string
	compare  []string
}

func newSkillsCmd() *cobra.Command {
	opts := skillsOptions{}

	cmd := &cobra.Command{
		Use:   "skills",
		Short: "Print the skills catalog",
		Long: `Print the skills catalog filtered by category and search query, highest level first.

Examples:
  portfolio skills
  portfolio skills --category Backend
  portfolio skills --search script
  portfolio skills --compare Python,Java,Git`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printSkills(cmd.OutOrStdout(), catalog.Default, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.category, "category", "c", catalog.AllCategories, "category to show")
	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "case-insensitive name filter")
	cmd.Flags().StringSliceVar(&opts.compare, "compare", nil, "skills to compare side by side (2-3)")
	return cmd
}

func printSkills(w io.Writer, cat *catalog.Catalog, opts skillsOptions) error {
	heading := color.New(color.FgCyan, color.Bold)

	if len(opts.compare) > 0 {
		sel := cat.SelectNames(opts.compare)
		comparisons, ok := catalog.Compare(sel)
		if !ok {
			return fmt.Errorf("need at least two known skills to compare, got %d", sel.Len())
		}

		heading.Fprintln(w, "Skill comparison")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tCATEGORY\tLEVEL\tPROFICIENCY\tEXPERIENCE\tCONFIDENCE")
		for _, c := range comparisons {
			fmt.Fprintf(tw, "%s\t%s\t%d%%\t%s\t%s\t%s\n",
				c.Skill.Name, c.Skill.Category, c.Skill.Level,
				c.Stats.Proficiency, c.Stats.Experience, c.Stats.Confidence)
		}
		return tw.Flush()
	}

	filter := catalog.FilterState{ActiveCategory: opts.category, SearchQuery: opts.search}
	skills := filter.Apply(cat)

	heading.Fprintf(w, "Skills (%s)\n", filter.ActiveCategory)
	if len(skills) == 0 {
		fmt.Fprintf(w, "No skills match %q in %s. Categories: %s\n",
			filter.SearchQuery, filter.ActiveCategory, strings.Join(cat.Filters(), ", "))
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCATEGORY\tLEVEL\tPROFICIENCY")
	for _, s := range skills {
		fmt.Fprintf(tw, "%s\t%s\t%d%%\t%s\n", s.Name, s.Category, s.Level, catalog.ProficiencyLabel(s.Level))
	}
	return tw.Flush()
}
