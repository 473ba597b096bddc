package cli

import (
	"os"
	"strings"

	"jobmatch/internal/domain/interview"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newInterviewCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interview",
		Short: "Grade an interview transcript and print structured feedback",
		RunE: func(_ *cobra.Command, _ []string) error {
			return rt.runInterview()
		},
	}

	cmd.Flags().StringP("input", "i", "", "feedback input JSON file (transcript, turns, options)")
	cmd.Flags().StringP("job", "J", "", "optional job context JSON file used to derive evaluator options")
	_ = rt.v.BindPFlag("interview.input", cmd.Flags().Lookup("input"))
	_ = rt.v.BindPFlag("interview.job", cmd.Flags().Lookup("job"))
	return cmd
}

func (rt *runtime) runInterview() error {
	inputPath := rt.v.GetString("interview.input")
	if inputPath == "" {
		return errMissingInput
	}

	var in interview.FeedbackInput
	if err := readJSONFile(inputPath, &in); err != nil {
		return err
	}

	if jobPath := rt.v.GetString("interview.job"); jobPath != "" {
		var job interview.JobContext
		if err := readJSONFile(jobPath, &job); err != nil {
			return err
		}
		auto := interview.BuildAutoOptions(interview.AutoOptionsInput{
			Transcript: feedbackText(in),
			Job:        job,
		})
		in.Options = interview.MergeOptions(in.Options, auto)
	}

	fb := interview.GenerateFeedback(in)
	rt.logger.Debug("interview graded",
		zap.Int("overall_score", fb.OverallScore),
		zap.String("recommendation", string(fb.Recommendation)),
	)
	return rt.write(fb)
}

func newOptionsCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Derive evaluator options from a job posting",
		RunE: func(_ *cobra.Command, _ []string) error {
			return rt.runOptions()
		},
	}

	cmd.Flags().StringP("job", "J", "", "job context JSON file")
	cmd.Flags().StringP("transcript", "t", "", "optional plain-text transcript used for language detection")
	_ = rt.v.BindPFlag("options.job", cmd.Flags().Lookup("job"))
	_ = rt.v.BindPFlag("options.transcript", cmd.Flags().Lookup("transcript"))
	return cmd
}

func (rt *runtime) runOptions() error {
	jobPath := rt.v.GetString("options.job")
	if jobPath == "" {
		return errMissingInput
	}

	var in interview.AutoOptionsInput
	if err := readJSONFile(jobPath, &in.Job); err != nil {
		return err
	}
	if p := rt.v.GetString("options.transcript"); p != "" {
		b, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		in.Transcript = string(b)
	}

	return rt.write(interview.BuildAutoOptions(in))
}

func feedbackText(in interview.FeedbackInput) string {
	if len(in.Turns) == 0 {
		return in.Transcript
	}
	b := strings.Builder{}
	b.WriteString(in.Transcript)
	for _, t := range in.Turns {
		b.WriteByte('\n')
		b.WriteString(t.Question)
		b.WriteByte('\n')
		b.WriteString(t.Answer)
	}
	return b.String()
}
