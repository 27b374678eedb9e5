package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"adhd-task-assistant/internal/app"
	"adhd-task-assistant/internal/model"
	"adhd-task-assistant/internal/task"
)

func sayCmd() *cobra.Command {
	var energy int
	cmd := &cobra.Command{
		Use:   "say <utterance>",
		Short: "Run an utterance through the assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				out, err := a.Tasks.HandleUtterance(ctx, scope(), task.HandleInput{
					Utterance:   utteranceArg(args),
					EnergyLevel: energy,
				})
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(out)
				}
				fmt.Println(out.Message)
				if len(out.Tasks) > 0 {
					renderRanked(os.Stdout, out.Tasks)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&energy, "energy", 0, "current energy level 1-5 (default 3)")
	return cmd
}

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <utterance>",
		Short: "Show the recognized intent without acting on it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				it := a.Recognizer.Recognize(ctx, utteranceArg(args))
				if viper.GetBool("json") {
					return printJSON(it)
				}
				renderIntent(os.Stdout, it)
				return nil
			})
		},
	}
}

func tasksCmd() *cobra.Command {
	var in task.ListInput
	var view string
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List open tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := task.ParseView(view)
			if err != nil {
				return fmt.Errorf("%w: %q (want one of %v)", err, view, task.Views)
			}
			in.View = v
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				out, err := a.Tasks.List(ctx, scope(), in)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(out)
				}
				if len(out.Tasks) == 0 {
					fmt.Println("No tasks in this view.")
					return nil
				}
				renderRanked(os.Stdout, out.Tasks)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&view, "view", string(task.ViewPrioritized), "prioritized, optimal, quick or hyperfocus")
	cmd.Flags().IntVar(&in.EnergyLevel, "energy", 0, "current energy level 1-5, used by the optimal view")
	cmd.Flags().IntVar(&in.MaxMinutes, "max-minutes", 0, "upper bound for the quick view (default 15)")
	return cmd
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one task with its score explanation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				rt, err := a.Tasks.Detail(ctx, scope(), args[0])
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(rt)
				}
				renderTask(os.Stdout, rt)
				return nil
			})
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Set a task's status (pending, inProgress, paused, completed, cancelled)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				t, err := a.Tasks.UpdateStatus(ctx, scope(), task.UpdateStatusInput{ID: args[0], Status: model.Status(args[1])})
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(t)
				}
				fmt.Printf("%s is now %s\n", t.Title, t.Status)
				return nil
			})
		},
	}
}
