package cmd

import (
	"fmt"

	"github.com/Conceptual-Machines/tweetcraft-api/internal/metrics"
	"github.com/Conceptual-Machines/tweetcraft-api/internal/models"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var (
		req      models.GenerationRequest
		gatekeep bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one product tweet and print it",
		Long: `Runs the full generation pipeline once: validation, preference persistence
(when DATABASE_URL is set), generation and the quality gate.

Examples:
  tweetcraft generate --product "Acme CI, builds in seconds" --type Funny
  tweetcraft generate --product "Acme CI" --type CTA --hashtags --structure short --gatekeep`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), cfg, metrics.Nop{})
			if err != nil {
				return err
			}
			defer a.Close()

			candidate, err := a.service.GenerateTweet(cmd.Context(), req, uuid.New().String())
			if err != nil {
				return err
			}

			text := candidate.Text
			if gatekeep {
				result, err := a.service.CheckRelevance(cmd.Context(), text)
				if err != nil {
					return err
				}
				text = result.Text
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().StringVar(&req.ProductDetails, "product", "", "Product details to write about")
	cmd.Flags().StringVar(&req.TweetType, "type", string(models.TweetTypeCTA), "Tweet type (CTA, Casual, Educational, Funny, ...)")
	cmd.Flags().BoolVar(&req.IncludeHashtags, "hashtags", false, "Allow hashtags")
	cmd.Flags().StringVar(&req.StructurePreference, "structure", "", "Structure preference (short, long)")
	cmd.Flags().StringVar(&req.CasePreference, "case", "", "Case preference (lowercase, uppercase, title, ...)")
	cmd.Flags().StringVar(&req.URL, "url", "", "Link to include")
	cmd.Flags().BoolVar(&gatekeep, "gatekeep", false, "Run the relevance gatekeeper on the result")
	_ = cmd.MarkFlagRequired("product")

	return cmd
}

func newRandomCmd() *cobra.Command {
	var req models.RandomRequest

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate one topic tweet with a mood and style",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), cfg, metrics.Nop{})
			if err != nil {
				return err
			}
			defer a.Close()

			tweet, err := a.service.RandomTweet(cmd.Context(), req)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tweet)
			return err
		},
	}

	cmd.Flags().StringVar(&req.Mood, "mood", "happy", "Mood (happy, funny, sarcastic, ...)")
	cmd.Flags().StringVar(&req.Style, "style", string(models.WritingStyleCasual), "Writing style (viral, trendy, casual, ...)")
	cmd.Flags().IntVar(&req.Length, "length", models.TweetMaxLength, "Maximum length")
	cmd.Flags().StringVar(&req.TweetType, "topic", "Tech", "Topic key")
	cmd.Flags().StringVar(&req.Structure, "structure", "", "Structure preference (short, long)")
	cmd.Flags().BoolVar(&req.Hashtags, "hashtags", false, "Allow hashtags")

	return cmd
}
