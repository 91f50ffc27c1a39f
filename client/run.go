package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Run drives an interactive terminal session against the quiz API. The
// session starts unauthenticated; login or register swaps in a client
// carrying the issued token.
func Run(ctx context.Context, in io.Reader, out io.Writer, cfg Config) error {
	c := New(cfg)
	reader := bufio.NewReader(in)

	fmt.Fprintf(out, "quizcli\nserver=%s\n\n", c.BaseURL())
	printHelp(out)

	for {
		fmt.Fprint(out, "\n> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		args := strings.Fields(line)
		switch strings.ToLower(args[0]) {
		case "help":
			printHelp(out)
		case "exit":
			return nil
		case "login":
			if len(args) != 3 {
				fmt.Fprintln(out, "usage: login <email> <password>")
				continue
			}
			result, err := c.Login(ctx, args[1], args[2])
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			c = c.WithToken(result.Token)
			fmt.Fprintf(out, "logged in as %s (%s)\n", result.User.Username, result.User.Role)
		case "register":
			if len(args) != 4 {
				fmt.Fprintln(out, "usage: register <username> <email> <password>")
				continue
			}
			result, err := c.Register(ctx, args[1], args[2], args[3], "")
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			c = c.WithToken(result.Token)
			fmt.Fprintf(out, "registered as %s\n", result.User.Username)
		case "quizzes":
			if err := runQuizzes(ctx, out, c); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		case "categories":
			if err := runCategories(ctx, out, c); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		case "play":
			if len(args) != 2 {
				fmt.Fprintln(out, "usage: play <quiz_id>")
				continue
			}
			if err := runPlay(ctx, reader, out, c, args[1]); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		case "submissions":
			if err := runSubmissions(ctx, out, c); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		default:
			fmt.Fprintln(out, "unknown command. type 'help' for usage.")
		}
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, "commands:")
	fmt.Fprintln(out, "  login <email> <password>")
	fmt.Fprintln(out, "  register <username> <email> <password>")
	fmt.Fprintln(out, "  quizzes")
	fmt.Fprintln(out, "  categories")
	fmt.Fprintln(out, "  play <quiz_id>")
	fmt.Fprintln(out, "  submissions")
	fmt.Fprintln(out, "  exit")
}

func runQuizzes(ctx context.Context, out io.Writer, c *Client) error {
	quizzes, err := c.Quizzes(ctx)
	if err != nil {
		return err
	}
	if len(quizzes) == 0 {
		fmt.Fprintln(out, "No quizzes yet.")
		return nil
	}
	for _, q := range quizzes {
		fmt.Fprintf(out, "%d. %s [%s/%s] %d questions, %d min\n",
			q.ID, q.Title, q.Category, q.Difficulty, len(q.Questions), q.TimeLimit)
	}
	return nil
}

func runCategories(ctx context.Context, out io.Writer, c *Client) error {
	categories, err := c.Categories(ctx)
	if err != nil {
		return err
	}
	for _, cat := range categories {
		fmt.Fprintf(out, "%-18s %d\n", cat.Name, cat.Count)
	}
	return nil
}

func runPlay(ctx context.Context, reader *bufio.Reader, out io.Writer, c *Client, rawID string) error {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return fmt.Errorf("invalid quiz id %q", rawID)
	}

	quiz, err := c.Quiz(ctx, uint(id))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%s\n%s\n", quiz.Title, quiz.Description)
	answers := make([]int, len(quiz.Questions))

	for i, question := range quiz.Questions {
		fmt.Fprintf(out, "\nQ%d: %s\n", i+1, question.QuestionText)
		for j, option := range question.Options {
			fmt.Fprintf(out, "  %d. %s\n", j+1, option)
		}

		answers[i] = promptAnswer(reader, out, len(question.Options))
	}

	result, err := c.Submit(ctx, quiz.ID, answers)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nScore: %d/%d (%.2f%%)\n", result.Score, result.TotalQuestions, result.Percentage)
	return nil
}

// promptAnswer reads a 1-based option choice. Blank input skips the question,
// which is submitted as unanswered (-1).
func promptAnswer(reader *bufio.Reader, out io.Writer, optionCount int) int {
	for {
		fmt.Fprint(out, "answer (blank to skip): ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return -1
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return -1
		}
		choice, err := strconv.Atoi(line)
		if err != nil || choice < 1 || choice > optionCount {
			fmt.Fprintf(out, "enter a number between 1 and %d\n", optionCount)
			continue
		}
		return choice - 1
	}
}

func runSubmissions(ctx context.Context, out io.Writer, c *Client) error {
	submissions, err := c.Submissions(ctx)
	if err != nil {
		return err
	}
	if len(submissions) == 0 {
		fmt.Fprintln(out, "No submissions yet.")
		return nil
	}
	for _, s := range submissions {
		title := fmt.Sprintf("quiz %d", s.QuizID)
		if s.Quiz != nil {
			title = s.Quiz.Title
		}
		fmt.Fprintf(out, "%s: %d/%d at %s\n",
			title, s.Score, s.TotalQuestions, s.SubmittedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
