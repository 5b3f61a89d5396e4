package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/npillmayer/uistyle/dom"
	"github.com/npillmayer/uistyle/dom/domdbg"
	"github.com/npillmayer/uistyle/dom/style"
	"github.com/npillmayer/uistyle/dom/style/cascade"
	"github.com/npillmayer/uistyle/dom/style/cssom"
	"github.com/npillmayer/uistyle/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/uistyle/dom/styledtree"
	"github.com/npillmayer/uistyle/theme"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"golang.org/x/net/html"
)

// errFailed is returned by commands which already reported their problems.
var errFailed = errors.New("check failed")

func newRootCommand(logger *log.Logger) *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "stylecheck",
		Short:         "Check, format and resolve UI style sheets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
			cmd.SetContext(withLogger(cmd.Context(), logger))
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(checkCommand(), fmtCommand(), resolveCommand(), themeCommand())
	return root
}

// loadSheet reads and parses a style sheet file. In lenient mode, the
// sheet is parsed with the douceur parser, which skips malformed rules
// instead of rejecting the sheet.
func loadSheet(path string, lenient bool) (*cssom.StyleSheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if lenient {
		return douceuradapter.Load(string(data))
	}
	return cssom.Parse(string(data))
}

// --- check ------------------------------------------------------------

func checkCommand() *cobra.Command {
	var lenient bool
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Parse style sheets and check attribute names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()
			schema := style.UserAgentSchema()
			failed := false
			for _, path := range args {
				logger.Debug("checking", "file", path, "lenient", lenient)
				sheet, err := loadSheet(path, lenient)
				if sheet == nil {
					printError(out, "%s: %v", path, err)
					failed = true
					continue
				}
				for _, e := range multierr.Errors(err) {
					printWarning(out, "%s: skipped %v", path, e)
				}
				warnings := multierr.Errors(cascade.Validate(sheet, schema))
				for _, w := range warnings {
					printWarning(out, "%s: %v", path, w)
				}
				if len(warnings) > 0 {
					failed = true
					continue
				}
				printSuccess(out, "%s: %d rules", path, sheet.Len())
			}
			if failed {
				return errFailed
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&lenient, "lenient", false, "skip malformed rules instead of rejecting the sheet")
	return cmd
}

// --- fmt --------------------------------------------------------------

func fmtCommand() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "fmt FILE...",
		Short: "Print style sheets in canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			for _, path := range args {
				sheet, err := loadSheet(path, false)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if !write {
					if _, err := sheet.WriteTo(cmd.OutOrStdout()); err != nil {
						return err
					}
					continue
				}
				if err := os.WriteFile(path, []byte(sheet.String()), 0o644); err != nil {
					return err
				}
				logger.Info("formatted", "file", path, "rules", sheet.Len())
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write result to source file instead of stdout")
	return cmd
}

// --- resolve ----------------------------------------------------------

func resolveCommand() *cobra.Command {
	var sheets []string
	var themeName string
	var attrs []string
	var dotFile string
	cmd := &cobra.Command{
		Use:   "resolve HTMLFILE",
		Short: "Resolve the styles of the body of an HTML document",
		Long: `Resolve builds a styled tree from the <body> of an HTML document and
prints the resolved attributes of every node. Styles are taken from the
theme, from the given style sheet files, and from <style> elements of the
document, in this order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var sheet *cssom.StyleSheet
			if themeName != "" {
				if sheet, err = theme.Load(themeName); err != nil {
					return err
				}
			}
			for _, path := range sheets {
				s, err := loadSheet(path, false)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				sheet = sheet.Append(s)
			}
			doc, err := html.Parse(bytes.NewReader(data))
			if err != nil {
				return err
			}
			embedded, err := douceuradapter.LoadHTML(doc)
			for _, e := range multierr.Errors(err) {
				logger.Warn("skipped embedded style", "err", e)
			}
			sheet = sheet.Append(embedded)
			root, err := dom.FromHTML(bytes.NewReader(data))
			if err != nil {
				return err
			}
			store := cssom.NewStore(sheet)
			styler := styledtree.NewStyler(store)
			if err := styler.Restyle(root, 0); err != nil {
				return err
			}
			logger.Debug("resolved", "rules", sheet.Len(), "attributes", len(attrs))
			fmt.Fprintln(cmd.OutOrStdout(), domdbg.PrintTree(root, attrs...))
			if dotFile == "" {
				return nil
			}
			f, err := os.Create(dotFile)
			if err != nil {
				return err
			}
			defer f.Close()
			return domdbg.ToGraphViz(root, f, nil)
		},
	}
	cmd.Flags().StringArrayVarP(&sheets, "sheet", "s", nil, "style sheet file (repeatable)")
	cmd.Flags().StringVarP(&themeName, "theme", "t", "", "built-in theme to start from")
	cmd.Flags().StringSliceVarP(&attrs, "attr", "a", []string{"width", "height", "color", "background-color"},
		"attributes to print")
	cmd.Flags().StringVar(&dotFile, "dot", "", "write a GraphViz diagram of the styled tree")
	return cmd
}

// --- theme ------------------------------------------------------------

func themeCommand() *cobra.Command {
	var asCSS bool
	cmd := &cobra.Command{
		Use:   "theme [NAME]",
		Short: "List built-in themes or show the palette of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, name := range theme.Names() {
					sheet, err := theme.Load(name)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%s %s\n", styleTitle.Render(name),
						styleDim.Render(fmt.Sprintf("(%d rules)", sheet.Len())))
				}
				return nil
			}
			sheet, err := theme.Load(args[0])
			if err != nil {
				return fmt.Errorf("%w (known: %s)", err, strings.Join(theme.Names(), ", "))
			}
			if asCSS {
				_, err = sheet.WriteTo(out)
				return err
			}
			fmt.Fprintln(out, styleTitle.Render(args[0]))
			n := printPalette(out, sheet)
			loggerFromContext(cmd.Context()).Debug("palette", "colors", n)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asCSS, "css", false, "print the theme's style sheet")
	return cmd
}
