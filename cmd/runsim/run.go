package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/milk9111/lanerunner/levels"
	"github.com/milk9111/lanerunner/logger"
	"github.com/milk9111/lanerunner/prefabs"
	"github.com/milk9111/lanerunner/sim"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [course]",
	Short: "Run a course with the autopilot",
	Long: `Plays an embedded course (or a course file given with --file) until the runner
crashes, the course ends or --duration seconds of game time pass.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "endless"
		if len(args) > 0 {
			name = args[0]
		}
		file, _ := cmd.Flags().GetString("file")
		script, _ := cmd.Flags().GetString("script")
		prefabDir, _ := cmd.Flags().GetString("prefabs")
		fps, _ := cmd.Flags().GetFloat64("fps")
		duration, _ := cmd.Flags().GetFloat64("duration")
		jsonOut, _ := cmd.Flags().GetBool("json")

		if prefabDir != "" {
			prefabs.Dir = prefabDir
		}

		var (
			course *levels.Course
			err    error
		)
		if file != "" {
			course, err = levels.LoadCourseFile(file)
		} else {
			course, err = levels.LoadCourse(name)
		}
		if err != nil {
			return err
		}

		runner, err := sim.New(sim.Config{
			Course:    course,
			Autopilot: true,
			Script:    script,
			Logger:    logger.L(),
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		res, err := runner.Run(ctx, fps, duration)
		if err != nil {
			return err
		}
		return report(cmd, course.Name, res, jsonOut)
	},
}

func report(cmd *cobra.Command, course string, res sim.Result, jsonOut bool) error {
	out := cmd.OutOrStdout()
	if jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Course string `json:"course"`
			sim.Result
			Outcome string `json:"outcome"`
		}{course, res, outcome(res)})
	}
	fmt.Fprintf(out, "course:   %s\n", course)
	fmt.Fprintf(out, "outcome:  %s\n", outcome(res))
	fmt.Fprintf(out, "distance: %.1f\n", res.Distance)
	fmt.Fprintf(out, "coins:    %d\n", res.Coins)
	fmt.Fprintf(out, "speed:    %.1f\n", res.Speed)
	fmt.Fprintf(out, "lane:     %s\n", res.Lane)
	fmt.Fprintf(out, "time:     %.2fs (%d frames)\n", res.Elapsed, res.Frames)
	return nil
}

func outcome(res sim.Result) string {
	switch {
	case res.Over:
		return "crashed"
	case res.Finished:
		return "finished"
	default:
		return "timed out"
	}
}

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the embedded courses",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(levels.Names(), "\n"))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(coursesCmd)

	runCmd.Flags().String("file", "", "Course JSON file on disk")
	runCmd.Flags().String("script", "", "Autopilot script (defaults to the embedded autopilot.tengo)")
	runCmd.Flags().String("prefabs", "", "Directory whose prefabs shadow the embedded ones")
	runCmd.Flags().Float64("fps", sim.DefaultFrameRate, "Simulated frame rate")
	runCmd.Flags().Float64("duration", 120, "Game seconds before giving up (0 = no limit)")
	runCmd.Flags().Bool("json", false, "Print the result as JSON")
}
