package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/planscheme/internal/api"
	"github.com/dgallion1/planscheme/internal/render"
)

var (
	flagClause    string
	flagSubClause string
	flagOut       string
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "planscheme",
		Short:         "Fetch and render Victorian planning-scheme ordinances",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&flagClause, "clause", "32 RESIDENTIAL ZONES", "clause title in the scheme index")
	root.PersistentFlags().StringVar(&flagSubClause, "subclause", "32.08 GENERAL RESIDENTIAL ZONE", "sub-clause title in the scheme index")

	docx := &cobra.Command{
		Use:   "docx",
		Short: "Render the ordinance to a word document",
		RunE:  runDocx,
	}
	docx.Flags().StringVar(&flagOut, "out", "ordinance.docx", "output file")

	md := &cobra.Command{
		Use:   "md",
		Short: "Render the ordinance to markdown",
		RunE:  runMarkdown,
	}
	md.Flags().StringVar(&flagOut, "out", "", "output file (default stdout)")

	root.AddCommand(
		docx,
		md,
		&cobra.Command{
			Use:   "print",
			Short: "Render the ordinance to the terminal",
			RunE:  runPrint,
		},
		&cobra.Command{
			Use:   "html",
			Short: "Print the ordinance's raw HTML as one page",
			RunE:  runHTML,
		},
		&cobra.Command{
			Use:   "serve",
			Short: "Serve rendered ordinances over HTTP",
			RunE:  runServe,
		},
	)
	return root
}

func runDocx(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	sections, err := a.sections(cmd.Context(), flagClause, flagSubClause)
	if err != nil {
		return err
	}
	doc := render.NewDocxRenderer(a.log).Render(sections)

	f, err := os.Create(flagOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", flagOut, err)
	}
	defer f.Close()
	if _, err := doc.WriteTo(f); err != nil {
		return fmt.Errorf("write %s: %w", flagOut, err)
	}
	a.log.Info("wrote document", "path", flagOut, "sections", len(sections))
	return nil
}

func runMarkdown(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	sections, err := a.sections(cmd.Context(), flagClause, flagSubClause)
	if err != nil {
		return err
	}
	out := render.MarkdownDocument(sections, a.log)

	if flagOut == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(flagOut, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", flagOut, err)
	}
	a.log.Info("wrote markdown", "path", flagOut, "sections", len(sections))
	return nil
}

func runPrint(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	sections, err := a.sections(cmd.Context(), flagClause, flagSubClause)
	if err != nil {
		return err
	}
	render.Terminal(os.Stdout, sections, a.log)
	return nil
}

// runHTML prints the raw API content as a single HTML page, untouched by
// the parser. Useful for eyeballing what a fragment actually contains.
func runHTML(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	id, err := a.client.OrdinanceID(cmd.Context(), flagClause, flagSubClause)
	if err != nil {
		return err
	}
	ord, err := a.client.Ordinance(cmd.Context(), id)
	if err != nil {
		return err
	}

	fmt.Println("<html><body>")
	fmt.Printf("<h1>%s - %s</h1>\n", flagClause, flagSubClause)
	fmt.Println(ord.Content)
	for _, sec := range ord.OrdinanceSections {
		fmt.Printf("<h2>%s</h2>\n", sec.Title)
		fmt.Println(sec.Content)
		fmt.Println()
	}
	fmt.Println("</body></html>")
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	srv := api.NewServer(a.client, a.log)
	httpServer := &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.log.Info("starting planscheme server", "port", a.cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
