package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/socialwave/socialwave-cli/internal/api"
)

func newQuestionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "questions",
		Aliases: []string{"question", "qa"},
		Short:   "Manage product questions and answers",
	}

	cmd.AddCommand(newQuestionsListCmd())
	cmd.AddCommand(newQuestionsAskCmd())
	cmd.AddCommand(newQuestionsAnswerCmd())
	cmd.AddCommand(newQuestionsDeleteCmd())

	return cmd
}

func newQuestionsListCmd() *cobra.Command {
	var (
		product    string
		page       int
		count      int
		unanswered bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List product questions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			ctx := cmdContext(cmd)

			var questions []api.Question
			if product != "" {
				key, err := resolveProductKey(ctx, client, product)
				if err != nil {
					return err
				}
				questions, err = client.Questions().ForProduct(ctx, key)
				if err != nil {
					return fmt.Errorf("failed to list questions for %s: %w", key, err)
				}
			} else {
				result, err := client.Questions().List(ctx, api.ListQuestionsParams{
					Page:       page,
					Count:      count,
					Unanswered: unanswered,
				})
				if err != nil {
					return fmt.Errorf("failed to list questions: %w", err)
				}
				questions = result.Questions
			}

			if isJSON(cmd) {
				return printJSON(cmd, questions)
			}
			if len(questions) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No questions found")
				return nil
			}
			for _, question := range questions {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s: %s (%d answers)\n",
					question.ID, question.Author, question.Content, len(question.Answers))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&product, "product", "", "Filter by product (key or fuzzy title match)")
	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	cmd.Flags().IntVar(&count, "count", 0, "Results per page")
	cmd.Flags().BoolVar(&unanswered, "unanswered", false, "Only unanswered questions")

	return cmd
}

func newQuestionsAskCmd() *cobra.Command {
	var (
		productKey string
		author     string
		email      string
		content    string
	)

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Ask a question about a product",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if productKey == "" || author == "" || content == "" {
				return fmt.Errorf("--product-key, --author, and --content are required")
			}

			client, err := getClient()
			if err != nil {
				return err
			}

			question, err := client.Questions().Ask(cmdContext(cmd), productKey, author, email, content)
			if err != nil {
				return fmt.Errorf("failed to ask question: %w", err)
			}

			if isJSON(cmd) {
				return printJSON(cmd, question)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created question %s\n", question.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&productKey, "product-key", "", "Product key the question is about")
	cmd.Flags().StringVar(&author, "author", "", "Asker display name")
	cmd.Flags().StringVar(&email, "email", "", "Asker email")
	cmd.Flags().StringVar(&content, "content", "", "Question text")

	return cmd
}

func newQuestionsAnswerCmd() *cobra.Command {
	var (
		author   string
		content  string
		official bool
	)

	cmd := &cobra.Command{
		Use:   "answer <id>",
		Short: "Answer a question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if author == "" || content == "" {
				return fmt.Errorf("--author and --content are required")
			}

			client, err := getClient()
			if err != nil {
				return err
			}

			answer, err := client.Questions().Answer(cmdContext(cmd), args[0], author, content, official)
			if err != nil {
				return fmt.Errorf("failed to answer question %s: %w", args[0], err)
			}

			if isJSON(cmd) {
				return printJSON(cmd, answer)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Posted answer %s\n", answer.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "Answerer display name")
	cmd.Flags().StringVar(&content, "content", "", "Answer text")
	cmd.Flags().BoolVar(&official, "official", false, "Mark the answer as a merchant answer")

	return cmd
}

func newQuestionsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a question",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := getClient()
			if err != nil {
				return err
			}
			if err := client.Questions().Delete(cmdContext(cmd), args[0]); err != nil {
				return fmt.Errorf("failed to delete question %s: %w", args[0], err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted question %s\n", args[0])
			return nil
		},
	}
}
