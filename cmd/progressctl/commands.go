package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/examprep/backend/internal/analytics"
	"github.com/examprep/backend/internal/service"
	"github.com/examprep/backend/internal/store"
)

// app carries the global flags and the services opened for one invocation.
type app struct {
	dbPath string
	userID string
	tz     string
	asJSON bool
	now    func() time.Time

	db       *store.SQLiteStore
	progress *service.ProgressService
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithClock(time.Now)
}

func newRootCmdWithClock(now func() time.Time) *cobra.Command {
	a := &app{now: now}

	root := &cobra.Command{
		Use:           "progressctl",
		Short:         "Inspect exam-preparation progress",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.db != nil {
				return a.db.Close()
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.dbPath, "db", "examprep.db", "path to the SQLite database")
	root.PersistentFlags().StringVar(&a.userID, "user", "", "learner id")
	root.PersistentFlags().StringVar(&a.tz, "tz", "UTC", "IANA time zone for calendar days")
	root.PersistentFlags().BoolVar(&a.asJSON, "json", false, "print JSON instead of tables")

	root.AddCommand(
		a.overviewCmd(),
		a.strengthsCmd(),
		a.timelineCmd(),
		a.streakCmd(),
		a.recommendCmd(),
		a.similarityCmd(),
		a.historyCmd(),
		a.summaryCmd(),
		a.topicCmd(),
		a.seedCmd(),
	)
	return root
}

func (a *app) open(logOut io.Writer) error {
	loc, err := time.LoadLocation(a.tz)
	if err != nil {
		return fmt.Errorf("--tz: %w", err)
	}
	db, err := store.NewSQLite(a.dbPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", a.dbPath, err)
	}
	a.db = db

	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelWarn}))
	engine := analytics.NewEngine(analytics.WithClock(a.now), analytics.WithLocation(loc))
	a.progress = service.NewProgressService(db, engine, logger)
	return nil
}

func (a *app) requireUser() error {
	if a.userID == "" {
		return errors.New("--user is required")
	}
	return nil
}

// userCmd builds a report command that needs --user.
func (a *app) userCmd(use, short string, run func(cmd *cobra.Command, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireUser(); err != nil {
				return err
			}
			return run(cmd, args)
		},
	}
}

// emit prints v as JSON with --json, otherwise calls table.
func (a *app) emit(w io.Writer, v any, table func(tw *tabwriter.Writer)) error {
	if a.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	table(tw)
	return tw.Flush()
}

func score(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}

func sortedDims(m map[string]float64) []string {
	dims := make([]string, 0, len(m))
	for d := range m {
		dims = append(dims, d)
	}
	sort.Strings(dims)
	return dims
}

func (a *app) overviewCmd() *cobra.Command {
	return a.userCmd("overview", "Syllabus completion per paper, topic and subtopic", func(cmd *cobra.Command, _ []string) error {
		ov, err := a.progress.SyllabusOverview(cmd.Context(), a.userID)
		if err != nil {
			return err
		}
		return a.emit(cmd.OutOrStdout(), ov, func(tw *tabwriter.Writer) {
			fmt.Fprintf(tw, "Overall\t%d%%\t%d/%d answered\tpending %d\tunmapped %d\n",
				ov.OverallProgress, ov.TotalQuestionsAnswered, ov.TotalPossibleQuestions, ov.PendingAnswers, ov.UnmappedAnswers)
			fmt.Fprintln(tw, "NODE\tPROGRESS\tANSWERS\tTARGET\tAVG\tLEVEL")
			var walk func(nodes []analytics.NodeProgress, depth int)
			walk = func(nodes []analytics.NodeProgress, depth int) {
				for _, n := range nodes {
					fmt.Fprintf(tw, "%s%s\t%d%%\t%d\t%d\t%s\t%s\n",
						strings.Repeat("  ", depth), n.Name, n.ProgressPercentage, n.AnswersCount,
						n.TargetQuestions, score(n.AverageScore), n.Strength)
					walk(n.Children, depth+1)
				}
			}
			walk(ov.Papers, 0)
			for _, issue := range ov.Issues {
				fmt.Fprintf(tw, "! %s\t%s\n", issue.NodeID, issue.Reason)
			}
		})
	})
}

func (a *app) strengthsCmd() *cobra.Command {
	return a.userCmd("strengths", "Topics grouped by mastery level", func(cmd *cobra.Command, _ []string) error {
		sa, err := a.progress.StrengthAnalysis(cmd.Context(), a.userID)
		if err != nil {
			return err
		}
		return a.emit(cmd.OutOrStdout(), sa, func(tw *tabwriter.Writer) {
			fmt.Fprintln(tw, "LEVEL\tTOPIC\tANSWERS\tAVG")
			for _, group := range []struct {
				level  analytics.Level
				topics []analytics.TopicLevel
			}{
				{analytics.LevelStrong, sa.StrongTopics},
				{analytics.LevelModerate, sa.ModerateTopics},
				{analytics.LevelWeak, sa.WeakTopics},
				{analytics.LevelNotStarted, sa.NotStartedTopics},
			} {
				for _, t := range group.topics {
					fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", group.level, t.Name, t.AnswersCount, score(t.AverageScore))
				}
			}
		})
	})
}

func (a *app) timelineCmd() *cobra.Command {
	var days int
	cmd := a.userCmd("timeline", "Daily answer counts and mean scores", func(cmd *cobra.Command, _ []string) error {
		buckets, err := a.progress.Timeline(cmd.Context(), a.userID, days, nil)
		if err != nil {
			return err
		}
		return a.emit(cmd.OutOrStdout(), buckets, func(tw *tabwriter.Writer) {
			fmt.Fprintln(tw, "DATE\tANSWERS\tPENDING\tMEAN")
			for _, b := range buckets {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", b.Date, b.AnswersCount, b.PendingCount, score(b.MeanScore))
			}
		})
	})
	cmd.Flags().IntVar(&days, "days", analytics.DefaultWindow, "window in days (7, 30, 90 or any value up to 3660)")
	return cmd
}

func (a *app) streakCmd() *cobra.Command {
	return a.userCmd("streak", "Current run of consecutive practice days", func(cmd *cobra.Command, _ []string) error {
		n, err := a.progress.Streak(cmd.Context(), a.userID, nil)
		if err != nil {
			return err
		}
		return a.emit(cmd.OutOrStdout(), map[string]int{"current_streak": n}, func(tw *tabwriter.Writer) {
			fmt.Fprintf(tw, "Current streak\t%d day(s)\n", n)
		})
	})
}

func (a *app) recommendCmd() *cobra.Command {
	return a.userCmd("recommend", "Prioritised study suggestions", func(cmd *cobra.Command, _ []string) error {
		recs, err := a.progress.Recommendations(cmd.Context(), a.userID)
		if err != nil {
			return err
		}
		return a.emit(cmd.OutOrStdout(), recs, func(tw *tabwriter.Writer) {
			fmt.Fprintln(tw, "PRIORITY\tTYPE\tTITLE\tPROGRESS")
			for _, r := range recs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d%%\n", r.Priority, r.Type, r.Title, r.ProgressPercentage)
			}
		})
	})
}

func (a *app) similarityCmd() *cobra.Command {
	return a.userCmd("similarity", "Topper similarity averages", func(cmd *cobra.Command, _ []string) error {
		stats, err := a.progress.SimilarityStats(cmd.Context(), a.userID)
		if err != nil {
			return err
		}
		return a.emit(cmd.OutOrStdout(), stats, func(tw *tabwriter.Writer) {
			fmt.Fprintf(tw, "Analyses\t%d\n", stats.TotalAnalyses)
			fmt.Fprintf(tw, "Average similarity\t%s\n", score(stats.AverageSimilarity))
			for _, dim := range sortedDims(stats.DetailedAverages) {
				fmt.Fprintf(tw, "  %s\t%.3f\n", dim, stats.DetailedAverages[dim])
			}
			fmt.Fprintf(tw, "Strength areas\t%s\n", strings.Join(stats.StrengthAreas, ", "))
			fmt.Fprintf(tw, "Weakness areas\t%s\n", strings.Join(stats.WeaknessAreas, ", "))
		})
	})
}

func (a *app) historyCmd() *cobra.Command {
	var limit int
	cmd := a.userCmd("history", "Latest topper comparisons", func(cmd *cobra.Command, _ []string) error {
		entries, err := a.progress.SimilarityHistory(cmd.Context(), a.userID, limit)
		if err != nil {
			return err
		}
		return a.emit(cmd.OutOrStdout(), entries, func(tw *tabwriter.Writer) {
			fmt.Fprintln(tw, "ANALYZED\tANSWER\tTOPPER\tOVERALL")
			for _, e := range entries {
				overall := "-"
				if v, ok := e.Scores["overall"]; ok {
					overall = fmt.Sprintf("%.3f", v)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.AnalyzedAt.Format(time.RFC3339), e.AnswerID, e.TopperID, overall)
			}
		})
	})
	cmd.Flags().IntVar(&limit, "limit", analytics.DefaultHistoryLimit, "maximum entries")
	return cmd
}

func (a *app) summaryCmd() *cobra.Command {
	return a.userCmd("summary", "Dashboard headline numbers", func(cmd *cobra.Command, _ []string) error {
		sum, err := a.progress.Summary(cmd.Context(), a.userID)
		if err != nil {
			return err
		}
		return a.emit(cmd.OutOrStdout(), sum, func(tw *tabwriter.Writer) {
			fmt.Fprintf(tw, "Answers\t%d (%d evaluated, %d pending)\n", sum.TotalAnswers, sum.EvaluatedAnswers, sum.PendingAnswers)
			fmt.Fprintf(tw, "Topics practiced\t%d\n", sum.TopicsPracticed)
			fmt.Fprintf(tw, "Last %d days\t%d\n", analytics.RecentDays, sum.RecentAnswers)
			if sum.AverageScores != nil {
				fmt.Fprintf(tw, "Average overall\t%.2f\n", sum.AverageScores.Overall)
			}
			if sum.BestTopic != nil {
				fmt.Fprintf(tw, "Best topic\t%s (%.2f)\n", sum.BestTopic.Name, sum.BestTopic.AverageScore)
			}
		})
	})
}

func (a *app) topicCmd() *cobra.Command {
	cmd := a.userCmd("topic TOPIC_ID", "Subtopic progress and recent answers of one topic", func(cmd *cobra.Command, args []string) error {
		detail, err := a.progress.TopicDetail(cmd.Context(), a.userID, args[0])
		if err != nil {
			return err
		}
		return a.emit(cmd.OutOrStdout(), detail, func(tw *tabwriter.Writer) {
			fmt.Fprintf(tw, "%s\t%d%%\t%s\n", detail.Topic.Name, detail.Topic.ProgressPercentage, detail.Topic.Strength)
			for _, s := range detail.Subtopics {
				fmt.Fprintf(tw, "  %s\t%d%%\t%s\t%d recent\n", s.Name, s.ProgressPercentage, s.Strength, len(s.RecentAnswers))
			}
		})
	})
	cmd.Args = cobra.ExactArgs(1)
	return cmd
}

func (a *app) seedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the syllabus with a YAML file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, err := store.SeedSyllabusFile(cmd.Context(), a.db, file)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d syllabus nodes from %s\n", tree.Size(), file)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "configs/syllabus.yaml", "YAML syllabus seed")
	return cmd
}
