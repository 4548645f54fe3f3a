package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	boardrender "github.com/bnema/jobboard-cli/internal/adapters/render/board"
	"github.com/bnema/jobboard-cli/internal/application"
	"github.com/bnema/jobboard-cli/internal/domain"
)

const defaultPageSize = 10

func newJobsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Browse job offers and apply",
	}

	cmd.AddCommand(
		newJobsSearchCmd(app),
		newJobsShowCmd(app),
		newJobsApplyCmd(app),
		newJobsFacetsCmd(app),
	)

	return cmd
}

func newJobsSearchCmd(app *app) *cobra.Command {
	var (
		criteria domain.FilterCriteria
		jobType  string
		page     domain.Page
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search job offers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := domain.ParseJobType(jobType)
			if err != nil {
				return err
			}
			criteria.JobType = parsed

			result, err := awaitRemote(cmd.Context(), cmd.ErrOrStderr(), "Searching job offers...", func(ctx context.Context) (application.SearchResult, error) {
				return app.board.Search(ctx, application.SearchQuery{Criteria: criteria, Page: page})
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, result)
			}

			rendered, err := boardrender.RenderSearch(result, app.renderOptions())
			if err != nil {
				return fmt.Errorf("render search results: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVarP(&criteria.Keyword, "keyword", "k", "", "Match title, description, requirements or company name")
	cmd.Flags().StringVarP(&criteria.Location, "location", "l", "", "Match location")
	cmd.Flags().StringVarP(&jobType, "type", "t", "", "Job type (full-time|part-time|contract|temporary|internship)")
	cmd.Flags().StringVarP(&criteria.Industry, "industry", "i", "", "Company industry")
	cmd.Flags().IntVar(&page.Number, "page", 1, "Result page")
	cmd.Flags().IntVar(&page.Size, "size", defaultPageSize, "Results per page (0 shows all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON output")

	return cmd
}

func newJobsShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <job-id>",
		Short: "Show a job offer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := awaitRemote(cmd.Context(), cmd.ErrOrStderr(), "Loading job offer...", func(ctx context.Context) (application.JobDetail, error) {
				return app.board.GetJob(ctx, args[0])
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, detail)
			}

			rendered, err := boardrender.RenderJob(detail, app.renderOptions())
			if err != nil {
				return fmt.Errorf("render job: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON output")

	return cmd
}

func newJobsApplyCmd(app *app) *cobra.Command {
	var (
		coverLetter     string
		coverLetterFile string
		resume          string
	)

	cmd := &cobra.Command{
		Use:   "apply <job-id>",
		Short: "Apply to a job offer as the signed-in candidate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if coverLetterFile != "" {
				data, err := os.ReadFile(coverLetterFile)
				if err != nil {
					return fmt.Errorf("read cover letter: %w", err)
				}
				coverLetter = string(data)
			}
			if err := restoreSession(cmd, app); err != nil {
				return err
			}

			command := application.ApplyCommand{JobID: args[0], CoverLetter: coverLetter, Resume: resume}
			submitted, err := awaitRemote(cmd.Context(), cmd.ErrOrStderr(), "Submitting application...", func(ctx context.Context) (domain.Application, error) {
				return app.board.Apply(ctx, command)
			})
			if err != nil {
				if errors.Is(err, domain.ErrNotAuthenticated) {
					return fmt.Errorf("%w: run `jb login` first", err)
				}
				return err
			}

			rendered, err := boardrender.RenderApplication(submitted)
			if err != nil {
				return fmt.Errorf("render application: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&coverLetter, "cover-letter", "", "Cover letter text")
	cmd.Flags().StringVar(&coverLetterFile, "cover-letter-file", "", "Read the cover letter from a file")
	cmd.Flags().StringVar(&resume, "resume", "", "Resume URL (defaults to the profile resume)")
	cmd.MarkFlagsMutuallyExclusive("cover-letter", "cover-letter-file")

	return cmd
}

func newJobsFacetsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "facets",
		Short: "List the filter values offered by the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := awaitRemote(cmd.Context(), cmd.ErrOrStderr(), "Loading filters...", func(ctx context.Context) (application.FacetsResult, error) {
				return app.board.Facets(ctx)
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, result)
			}

			rendered, err := boardrender.RenderFacets(result)
			if err != nil {
				return fmt.Errorf("render facets: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON output")

	return cmd
}
