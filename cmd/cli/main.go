package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/jakechorley/floodcamp/internal/config"
	"github.com/jakechorley/floodcamp/pkg/core/model"
	"github.com/jakechorley/floodcamp/pkg/core/services"
	"github.com/jakechorley/floodcamp/pkg/db"
	"github.com/jakechorley/floodcamp/pkg/storage"
	"github.com/jakechorley/floodcamp/pkg/utils/logging"
)

// App holds the application dependencies
type App struct {
	cfg      *config.Config
	store    *storage.Store
	database *db.DB
	logger   *zap.Logger
	ctx      context.Context
}

var (
	env string
	app *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "floodcamp",
		Short: "Floodcamp CLI - Coordinate flood-relief camps and volunteers",
		Long:  `A CLI tool for flood-relief coordination: refugee and volunteer registration, a relief-camp directory with bed reservation, volunteer assignments, and an admin console.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.store != nil {
					app.store.Close()
				}
				if app.logger != nil {
					app.logger.Sync()
				}
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	// Add all commands
	rootCmd.AddCommand(registerCmd())
	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(logoutCmd())
	rootCmd.AddCommand(whoamiCmd())
	rootCmd.AddCommand(updateProfileCmd())
	rootCmd.AddCommand(campsCmd())
	rootCmd.AddCommand(addCampCmd())
	rootCmd.AddCommand(deleteCampCmd())
	rootCmd.AddCommand(reserveCmd())
	rootCmd.AddCommand(cancelReservationCmd())
	rootCmd.AddCommand(volunteerCmd())
	rootCmd.AddCommand(myAssignmentsCmd())
	rootCmd.AddCommand(listUsersCmd())
	rootCmd.AddCommand(addUserCmd())
	rootCmd.AddCommand(deleteUserCmd())
	rootCmd.AddCommand(activityCmd())
	rootCmd.AddCommand(overviewCmd())
	rootCmd.AddCommand(interactiveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, storage, and registries
func initApp() error {
	var err error
	app = &App{
		ctx: context.Background(),
	}

	app.logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.logger.Info("Starting application", zap.String("environment", env))

	app.logger.Info("Loading configuration")
	app.cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.logger.Debug("Configuration loaded successfully")

	app.logger.Info("Opening document store", zap.String("path", app.cfg.StorePath))
	app.store, err = storage.Open(app.cfg.StorePath)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	app.database = db.NewDB(app.store)

	if err := db.EnsureDefaultCamps(app.ctx, app.database); err != nil {
		return fmt.Errorf("failed to seed default camps: %w", err)
	}
	app.logger.Debug("Default camps ensured")

	if app.cfg.Admin != nil {
		err := services.EnsureAdmin(app.ctx, app.database, app.logger,
			app.cfg.Admin.Name, app.cfg.Admin.Email, app.cfg.Admin.Contact, app.cfg.Admin.Password)
		if err != nil {
			return fmt.Errorf("failed to ensure admin account: %w", err)
		}
	}

	app.logger.Info("Application initialized")
	return nil
}

// currentActor loads the signed-in account for commands that require one.
func currentActor() (*model.User, error) {
	actor, err := services.CurrentUser(app.ctx, app.database)
	if err != nil {
		return nil, fmt.Errorf("you must be logged in for this command: %w", err)
	}
	return actor, nil
}

func parseCampID(arg string) (int, error) {
	campID, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("camp_id must be a number: %w", err)
	}
	return campID, nil
}

func formatDate(value string) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return t.Format("2006-01-02 15:04")
}

// Command definitions

func registerCmd() *cobra.Command {
	var input services.RegisterInput
	var role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register as a refugee or volunteer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Role = model.Role(role)

			user, err := services.Register(app.ctx, app.database, app.logger, input)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Registration successful!\n\n")
			fmt.Printf("Name:  %s\n", user.Name)
			fmt.Printf("Email: %s\n", user.Email)
			fmt.Printf("Role:  %s\n\n", user.Role)
			fmt.Println("You are now logged in.")
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "Full name (required)")
	cmd.Flags().IntVar(&input.Age, "age", 0, "Age (required)")
	cmd.Flags().StringVar(&input.Email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&input.Contact, "contact", "", "Contact number (required)")
	cmd.Flags().StringVar(&input.Password, "password", "", "Password (required)")
	cmd.Flags().StringVar(&role, "role", "refugee", "Role: refugee or volunteer")
	cmd.Flags().StringVar(&input.Address, "address", "", "Address (refugees)")
	cmd.Flags().StringVar(&input.Needs, "needs", "", "Assistance needed (refugees)")
	cmd.Flags().StringVar(&input.Skills, "skills", "", "Skills (volunteers)")
	cmd.Flags().StringVar(&input.Availability, "availability", "", "Availability (volunteers)")

	return cmd
}

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <email> <password>",
		Short: "Log in with your credentials",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := services.Login(app.ctx, app.database, app.logger, args[0], args[1])
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Welcome back, %s! (%s)\n", user.Name, user.Role)
			return nil
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.Logout(app.ctx, app.database, app.logger); err != nil {
				return err
			}
			fmt.Println("✓ Logged out.")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := currentActor()
			if err != nil {
				return err
			}

			fmt.Printf("\n%s <%s>\n", actor.Name, actor.Email)
			fmt.Printf("Role:    %s\n", actor.Role)
			fmt.Printf("Contact: %s\n", actor.Contact)
			if actor.Address != "" {
				fmt.Printf("Address: %s\n", actor.Address)
			}
			if actor.Needs != "" {
				fmt.Printf("Needs:   %s\n", actor.Needs)
			}
			if actor.Skills != "" {
				fmt.Printf("Skills:  %s\n", actor.Skills)
			}
			if actor.Availability != "" {
				fmt.Printf("Availability: %s\n", actor.Availability)
			}
			return nil
		},
	}
}

func updateProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "updateProfile",
		Short: "Update your profile fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := currentActor()
			if err != nil {
				return err
			}

			var update services.ProfileUpdate
			if cmd.Flags().Changed("name") {
				v, _ := cmd.Flags().GetString("name")
				update.Name = &v
			}
			if cmd.Flags().Changed("contact") {
				v, _ := cmd.Flags().GetString("contact")
				update.Contact = &v
			}
			if cmd.Flags().Changed("age") {
				v, _ := cmd.Flags().GetInt("age")
				update.Age = &v
			}
			if cmd.Flags().Changed("address") {
				v, _ := cmd.Flags().GetString("address")
				update.Address = &v
			}
			if cmd.Flags().Changed("needs") {
				v, _ := cmd.Flags().GetString("needs")
				update.Needs = &v
			}
			if cmd.Flags().Changed("skills") {
				v, _ := cmd.Flags().GetString("skills")
				update.Skills = &v
			}
			if cmd.Flags().Changed("availability") {
				v, _ := cmd.Flags().GetString("availability")
				update.Availability = &v
			}

			user, err := services.UpdateProfile(app.ctx, app.database, app.logger, actor, update)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Profile updated for %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().String("name", "", "Full name")
	cmd.Flags().String("contact", "", "Contact number")
	cmd.Flags().Int("age", 0, "Age")
	cmd.Flags().String("address", "", "Address (refugees)")
	cmd.Flags().String("needs", "", "Assistance needed (refugees)")
	cmd.Flags().String("skills", "", "Skills (volunteers)")
	cmd.Flags().String("availability", "", "Availability (volunteers)")

	return cmd
}

func campsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "camps",
		Short: "List relief camps and your reservation status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := currentActor()
			if err != nil {
				return err
			}

			camps, err := services.ListCamps(app.ctx, app.database, app.logger, actor)
			if err != nil {
				return err
			}
			reservation, err := services.GetReservation(app.ctx, app.database, actor)
			if err != nil {
				return err
			}

			if reservation != nil {
				fmt.Printf("\n✓ Your bed is reserved at %q (selected %s)\n",
					reservation.CampName, formatDate(reservation.SelectedDate))
			} else {
				fmt.Println("\nYou have no camp selected.")
			}

			fmt.Printf("\nFound %d camps:\n\n", len(camps))
			for _, c := range camps {
				status := fmt.Sprintf("%d beds available", c.Beds)
				if c.Beds <= 0 {
					status = "FULL"
				}
				marker := " "
				if reservation != nil && reservation.CampID == c.ID {
					marker = "*"
				}
				fmt.Printf("%s %3d. %-28s %-18s ambulance: %-7s contact: %s\n",
					marker, c.ID, c.Name, status, c.Ambulance, c.Contact)
				fmt.Printf("       resources: %s\n", strings.Join(c.Resources, ", "))
				if c.AddedBy != "" {
					fmt.Printf("       added by %s on %s\n", c.AddedBy, formatDate(c.AddedDate))
				}
			}

			return nil
		},
	}
}

func addCampCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addCamp <name> <beds>",
		Short: "Add a relief camp (volunteers and admins)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := currentActor()
			if err != nil {
				return err
			}

			beds, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("beds must be a number: %w", err)
			}

			resources, _ := cmd.Flags().GetStringSlice("resources")
			contact, _ := cmd.Flags().GetString("contact")
			ambulance, _ := cmd.Flags().GetString("ambulance")

			camp, err := services.AddCamp(app.ctx, app.database, app.logger, actor, services.AddCampInput{
				Name:      args[0],
				Beds:      beds,
				Resources: resources,
				Contact:   contact,
				Ambulance: ambulance,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Camp created successfully!\n\n")
			fmt.Printf("Camp ID:   %d\n", camp.ID)
			fmt.Printf("Name:      %s\n", camp.Name)
			fmt.Printf("Beds:      %d\n", camp.Beds)
			fmt.Printf("Resources: %s\n", strings.Join(camp.Resources, ", "))
			return nil
		},
	}

	cmd.Flags().StringSlice("resources", nil, "Comma-separated resources (e.g. Food,Water)")
	cmd.Flags().String("contact", "", "Emergency contact number")
	cmd.Flags().String("ambulance", "", "Ambulance availability: Yes, No or Nearby")

	return cmd
}

func deleteCampCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deleteCamp <camp_id>",
		Short: "Delete a camp and cancel its reservations and assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := currentActor()
			if err != nil {
				return err
			}

			campID, err := parseCampID(args[0])
			if err != nil {
				return err
			}

			if err := services.DeleteCamp(app.ctx, app.database, app.logger, actor, campID); err != nil {
				return err
			}

			fmt.Printf("✓ Camp %d deleted.\n", campID)
			return nil
		},
	}
}

func reserveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reserve <camp_id>",
		Short: "Reserve a bed at a camp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := currentActor()
			if err != nil {
				return err
			}

			campID, err := parseCampID(args[0])
			if err != nil {
				return err
			}

			reservation, err := services.Reserve(app.ctx, app.database, app.logger, actor, campID)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Successfully selected %q! Your bed has been reserved.\n", reservation.CampName)
			return nil
		},
	}
}

func cancelReservationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancelReservation",
		Short: "Cancel your camp reservation and free the bed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := currentActor()
			if err != nil {
				return err
			}

			cancelled, err := services.CancelReservation(app.ctx, app.database, app.logger, actor)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Cancelled your selection for %q.\n", cancelled.CampName)
			return nil
		},
	}
}

func volunteerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "volunteer <camp_id>",
		Short: "Record that you are volunteering at a camp",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := currentActor()
			if err != nil {
				return err
			}

			campID, err := parseCampID(args[0])
			if err != nil {
				return err
			}

			assignment, err := services.Volunteer(app.ctx, app.database, app.logger, actor, campID)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Thank you, %s, for volunteering at %q!\n", actor.Name, assignment.CampName)
			return nil
		},
	}
}

func myAssignmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "myAssignments",
		Short: "List your volunteer assignment history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := currentActor()
			if err != nil {
				return err
			}

			history, err := services.ListAssignments(app.ctx, app.database, app.logger, actor)
			if err != nil {
				return err
			}

			if len(history) == 0 {
				fmt.Println("\nNo assignments yet.")
				return nil
			}

			fmt.Printf("\nFound %d assignments:\n\n", len(history))
			for _, a := range history {
				fmt.Printf("- %s at %q\n", formatDate(a.Date), a.CampName)
			}
			return nil
		},
	}
}

func listUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listUsers",
		Short: "List all registered accounts (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := currentActor()
			if err != nil {
				return err
			}

			users, err := services.AdminListUsers(app.ctx, app.database, app.logger, actor)
			if err != nil {
				return err
			}

			fmt.Printf("\nFound %d users:\n\n", len(users))
			for _, u := range users {
				fmt.Printf("- %s <%s> (%s) - %s\n", u.Name, u.Email, u.Role, u.Contact)
			}
			return nil
		},
	}
}

func addUserCmd() *cobra.Command {
	var input services.RegisterInput
	var role string

	cmd := &cobra.Command{
		Use:   "addUser",
		Short: "Create a refugee or volunteer account (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := currentActor()
			if err != nil {
				return err
			}

			input.Role = model.Role(role)

			user, err := services.AdminAddUser(app.ctx, app.database, app.logger, actor, input)
			if err != nil {
				return err
			}

			fmt.Printf("✓ User %q (%s) created.\n", user.Name, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "Full name (required)")
	cmd.Flags().IntVar(&input.Age, "age", 0, "Age (required)")
	cmd.Flags().StringVar(&input.Email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&input.Contact, "contact", "", "Contact number (required)")
	cmd.Flags().StringVar(&input.Password, "password", "", "Password (required)")
	cmd.Flags().StringVar(&role, "role", "refugee", "Role: refugee or volunteer")
	cmd.Flags().StringVar(&input.Address, "address", "", "Address (refugees)")
	cmd.Flags().StringVar(&input.Needs, "needs", "", "Assistance needed (refugees)")
	cmd.Flags().StringVar(&input.Skills, "skills", "", "Skills (volunteers)")
	cmd.Flags().StringVar(&input.Availability, "availability", "", "Availability (volunteers)")

	return cmd
}

func deleteUserCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deleteUser <email>",
		Short: "Delete an account and cascade its reservation and assignments (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := currentActor()
			if err != nil {
				return err
			}

			if err := services.AdminDeleteUser(app.ctx, app.database, app.logger, actor, args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ User %s deleted.\n", args[0])
			return nil
		},
	}
}

func activityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activity",
		Short: "Show the activity log, newest first (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := currentActor()
			if err != nil {
				return err
			}

			activities, err := services.ListActivities(app.ctx, app.database, app.logger, actor)
			if err != nil {
				return err
			}

			fmt.Printf("\n%d activities:\n\n", len(activities))
			for _, a := range activities {
				who := a.User
				if who == "" {
					who = "-"
				}
				fmt.Printf("%s  %-22s %-12s %s\n", formatDate(a.Timestamp), a.Type, who, a.Description)
			}
			return nil
		},
	}
}

func overviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show system totals (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			actor, err := currentActor()
			if err != nil {
				return err
			}

			result, err := services.Overview(app.ctx, app.database, app.logger, actor)
			if err != nil {
				return err
			}

			fmt.Printf("\nUsers:        %d (%d refugees, %d volunteers, %d admins)\n",
				result.TotalUsers, result.Refugees, result.Volunteers, result.Admins)
			fmt.Printf("Camps:        %d\n", result.TotalCamps)
			fmt.Printf("Beds:         %d free of %d\n", result.BedsFree, result.BedsTotal)
			fmt.Printf("Reservations: %d\n", result.Reservations)
			fmt.Printf("Assignments:  %d\n", result.Assignments)
			return nil
		},
	}
}

func interactiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Start an interactive session (open the store once, run multiple commands)",
		Long: `Start an interactive session where you can run multiple commands without reopening the store.
The session will keep running until you type 'exit' or 'quit'.

Type 'help' to see available commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("\n🚀 Starting interactive session...")
			fmt.Println("Type 'help' for available commands, 'exit' or 'quit' to leave")

			// Get all sibling commands (excluding interactive itself)
			rootCmd := cmd.Parent()
			commands := make(map[string]*cobra.Command)
			for _, subCmd := range rootCmd.Commands() {
				if subCmd.Name() != "interactive" && subCmd.Name() != "completion" && subCmd.Name() != "help" {
					commands[subCmd.Name()] = subCmd
				}
			}

			scanner := bufio.NewScanner(os.Stdin)

			for {
				fmt.Print("> ")

				if !scanner.Scan() {
					break
				}

				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}

				// Parse command (respecting quotes)
				parts, err := parseCommandLine(line)
				if err != nil {
					fmt.Printf("❌ Error parsing command: %v\n\n", err)
					continue
				}
				if len(parts) == 0 {
					continue
				}
				cmdName := parts[0]
				cmdArgs := parts[1:]

				if cmdName == "exit" || cmdName == "quit" {
					fmt.Println("👋 Goodbye!")
					return nil
				}

				if cmdName == "help" {
					printInteractiveHelp(commands)
					continue
				}

				targetCmd, exists := commands[cmdName]
				if !exists {
					fmt.Printf("❌ Unknown command: %s (type 'help' for available commands)\n\n", cmdName)
					continue
				}

				// Reset command flags and args
				targetCmd.Flags().VisitAll(func(flag *pflag.Flag) {
					flag.Changed = false
					flag.Value.Set(flag.DefValue)
				})

				// Execute the command's RunE directly, bypassing the full Execute() flow
				// This avoids re-running PersistentPreRunE which would call initApp() again
				if err := targetCmd.ParseFlags(cmdArgs); err != nil {
					fmt.Printf("❌ Error parsing flags: %v\n\n", err)
					continue
				}

				cmdArgs = targetCmd.Flags().Args()

				if err := targetCmd.Args(targetCmd, cmdArgs); err != nil {
					fmt.Printf("❌ Error: %v\n\n", err)
					continue
				}

				if targetCmd.RunE != nil {
					if err := targetCmd.RunE(targetCmd, cmdArgs); err != nil {
						fmt.Printf("❌ Error: %v\n\n", err)
					}
				} else if targetCmd.Run != nil {
					targetCmd.Run(targetCmd, cmdArgs)
				}
			}

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("error reading input: %w", err)
			}

			return nil
		},
	}

	return cmd
}

// parseCommandLine splits a command line into arguments, respecting quoted strings
// Supports both single and double quotes
func parseCommandLine(line string) ([]string, error) {
	var args []string
	var current strings.Builder
	var inQuote rune // 0 if not in quote, '"' or '\'' if in quote

	for i, r := range line {
		switch {
		case inQuote != 0:
			// Inside a quote
			if r == inQuote {
				// End quote
				inQuote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			// Start quote
			inQuote = r
		case unicode.IsSpace(r):
			// Whitespace outside quotes - end current argument
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			// Regular character
			current.WriteRune(r)
		}

		// Check for unclosed quote at end
		if i == len(line)-1 && inQuote != 0 {
			return nil, fmt.Errorf("unclosed quote: %c", inQuote)
		}
	}

	// Add final argument if present
	if current.Len() > 0 {
		args = append(args, current.String())
	}

	return args, nil
}

func printInteractiveHelp(commands map[string]*cobra.Command) {
	fmt.Println("\nAvailable commands:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}

	for _, name := range names {
		cmd := commands[name]
		fmt.Printf("  %-30s %s\n", cmd.Use, cmd.Short)
	}

	fmt.Println("\n  help                           Show this help message")
	fmt.Println("  exit, quit                     Exit the interactive session")
}
