package cli

import (
	"context"
	"fmt"
	"time"

	"taskreport/internal/fetch"
	"taskreport/internal/logger"
	"taskreport/internal/report"
	"taskreport/internal/schema"

	"github.com/spf13/cobra"
)

var (
	runTasksURL string
	runUsersURL string
	runOutDir   string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch collections and reconcile per-user reports",
	Long: `Fetch the task and user collections, correlate them, and write one
status report per user under the report directory.

A report whose content matches the existing file apart from its generation
timestamp is left untouched. A changed report archives the existing file
under an old_ prefix before writing the new one.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runTasksURL, "tasks-url", "", "tasks collection URL (overrides config)")
	runCmd.Flags().StringVar(&runUsersURL, "users-url", "", "users collection URL (overrides config)")
	runCmd.Flags().StringVar(&runOutDir, "output", "", "report directory (overrides config)")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := config
	if cfg == nil {
		cfg = DefaultConfig()
	}

	tasksURL := cfg.API.TasksURL
	if runTasksURL != "" {
		tasksURL = runTasksURL
	}
	usersURL := cfg.API.UsersURL
	if runUsersURL != "" {
		usersURL = runUsersURL
	}
	outDir := cfg.Report.Directory
	if runOutDir != "" {
		outDir = runOutDir
	}

	client := fetch.NewClient(time.Duration(cfg.API.TimeoutSeconds) * time.Second)
	ctx := context.Background()

	tasksPayload, err := client.Get(ctx, tasksURL)
	if err != nil {
		return fmt.Errorf("failed to fetch tasks: %w", err)
	}
	usersPayload, err := client.Get(ctx, usersURL)
	if err != nil {
		return fmt.Errorf("failed to fetch users: %w", err)
	}

	tasks, err := schema.ParseTasks(tasksPayload)
	if err != nil {
		return fmt.Errorf("failed to parse tasks: %w", err)
	}
	users, err := schema.ParseUsers(usersPayload)
	if err != nil {
		return fmt.Errorf("failed to parse users: %w", err)
	}

	logger.Schema().WithFields(map[string]interface{}{
		"users": len(users),
		"tasks": len(tasks),
	}).Info("collections validated")

	correlated := report.Correlate(users, tasks)

	reconciler, err := report.NewReconciler(outDir, report.DefaultSanitizer())
	if err != nil {
		return err
	}

	failed := 0
	for _, u := range correlated {
		action, err := reconciler.Reconcile(u, time.Now())
		if err != nil {
			failed++
			logger.Report().WithField("user", u.User.Username).Error(err)
			continue
		}
		logger.Report().WithFields(map[string]interface{}{
			"user":   u.User.Username,
			"action": action.String(),
		}).Info("report reconciled")
	}

	fmt.Printf("Processed %d users (%d tasks) into %s\n", len(correlated), len(tasks), outDir)

	if failed > 0 {
		return fmt.Errorf("%d of %d reports failed", failed, len(correlated))
	}
	return nil
}
