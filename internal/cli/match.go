package cli

import (
	"errors"
	"time"

	"jobmatch/internal/domain/matching"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errMissingInput = errors.New("missing required input file")

func newMatchCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Score a candidate profile against a job posting",
		RunE: func(_ *cobra.Command, _ []string) error {
			return rt.runMatch()
		},
	}

	cmd.Flags().StringP("candidate", "c", "", "candidate profile JSON file")
	cmd.Flags().StringP("job", "J", "", "job requirements JSON file")
	cmd.Flags().String("now", "", "reference time for current roles (RFC 3339, default is now)")
	_ = rt.v.BindPFlag("match.candidate", cmd.Flags().Lookup("candidate"))
	_ = rt.v.BindPFlag("match.job", cmd.Flags().Lookup("job"))
	_ = rt.v.BindPFlag("match.now", cmd.Flags().Lookup("now"))
	return cmd
}

func (rt *runtime) runMatch() error {
	candidatePath := rt.v.GetString("match.candidate")
	jobPath := rt.v.GetString("match.job")
	if candidatePath == "" || jobPath == "" {
		return errMissingInput
	}

	now := time.Now().UTC()
	if s := rt.v.GetString("match.now"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
		now = t
	}

	var profile matching.CandidateMatchProfile
	if err := readJSONFile(candidatePath, &profile); err != nil {
		return err
	}
	var job matching.JobMatchRequirements
	if err := readJSONFile(jobPath, &job); err != nil {
		return err
	}

	res := matching.CalculateAt(profile, job, now)
	rt.logger.Debug("match computed",
		zap.String("job_title", job.Title),
		zap.Float64("match_score", res.MatchScore),
	)
	return rt.write(res)
}
