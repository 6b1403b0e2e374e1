// Command admin manages PieTracker accounts directly against the JSON
// data files, for use on the deployment console:
//
//	admin list-users
//	admin create-admin admin@pietracker.com
//	admin deactivate-user user@example.com
//	admin activate-user user@example.com
//	admin delete-user user@example.com
//	admin stats
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/LSkevi/PieTracker/internal/config"
	"github.com/LSkevi/PieTracker/internal/models"
	"github.com/LSkevi/PieTracker/internal/store"
	"github.com/LSkevi/PieTracker/internal/util"

	"github.com/google/uuid"
	"golang.org/x/term"
)

func main() {
	configPath := flag.String("config", os.Getenv("PT_CONFIG"), "path to config.yaml")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatalf("load config: %v", err)
	}
	st, err := store.Open(cfg.Storage)
	if err != nil {
		fatalf("open store: %v", err)
	}

	switch args[0] {
	case "list-users":
		listUsers(st)
	case "create-admin":
		requireArg(args, 2, "create-admin <email>")
		createAdmin(st, args[1])
	case "deactivate-user":
		requireArg(args, 2, "deactivate-user <email>")
		setActive(st, args[1], false)
	case "activate-user":
		requireArg(args, 2, "activate-user <email>")
		setActive(st, args[1], true)
	case "delete-user":
		requireArg(args, 2, "delete-user <email>")
		deleteUser(st, args[1])
	case "stats":
		stats(st)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: admin [-config path] <command> [args]")
	fmt.Fprintln(os.Stderr, "commands: list-users, create-admin <email>, activate-user <email>,")
	fmt.Fprintln(os.Stderr, "          deactivate-user <email>, delete-user <email>, stats")
}

func requireArg(args []string, n int, form string) {
	if len(args) < n {
		fatalf("usage: admin %s", form)
	}
}

func fatalf(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

func listUsers(st store.Store) {
	users := st.Users()
	fmt.Printf("Total users: %d\n\n", len(users))
	fmt.Printf("%-10s %-30s %-8s %-10s %s\n", "ID", "Email", "Role", "Status", "Last Login")
	fmt.Println(strings.Repeat("-", 80))
	for _, u := range users {
		status := "Active"
		if !u.IsActive {
			status = "Inactive"
		}
		lastLogin := "Never"
		if u.LastLogin != nil && len(*u.LastLogin) >= 10 {
			lastLogin = (*u.LastLogin)[:10]
		}
		id := u.ID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Printf("%-10s %-30s %-8s %-10s %s\n", id, u.Email, u.Role, status, lastLogin)
	}
}

func createAdmin(st store.Store, email string) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := util.ValidateEmail(email); err != nil {
		fatalf("%v", err)
	}
	if _, exists := st.FindUserByEmail(email); exists {
		fatalf("user %s already exists", email)
	}

	fmt.Print("Password: ")
	pwd, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		fatalf("read password: %v", err)
	}
	if err := util.ValidatePassword(string(pwd)); err != nil {
		fatalf("%v", err)
	}

	hash, err := util.HashPassword(string(pwd))
	if err != nil {
		fatalf("hash password: %v", err)
	}

	name := strings.SplitN(email, "@", 2)[0]
	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     name,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := st.PutUser(user); err != nil {
		fatalf("save user: %v", err)
	}
	fmt.Printf("admin user %s created\n", email)
}

func setActive(st store.Store, email string, active bool) {
	user, ok := st.FindUserByEmail(email)
	if !ok {
		fatalf("user %s not found", email)
	}
	user.IsActive = active
	if err := st.PutUser(user); err != nil {
		fatalf("save user: %v", err)
	}
	if active {
		fmt.Printf("user %s activated\n", email)
	} else {
		fmt.Printf("user %s deactivated\n", email)
	}
}

func deleteUser(st store.Store, email string) {
	user, ok := st.FindUserByEmail(email)
	if !ok {
		fatalf("user %s not found", email)
	}
	if err := st.DeleteUser(user.ID); err != nil {
		fatalf("delete user: %v", err)
	}
	fmt.Printf("user %s and all data deleted\n", email)
}

func stats(st store.Store) {
	users := st.Users()
	var active, admins int
	for _, u := range users {
		if u.IsActive {
			active++
		}
		if u.Role == models.RoleAdmin {
			admins++
		}
	}

	owners := make(map[string]bool)
	for _, e := range st.Expenses() {
		if e.UserID != "" {
			owners[e.UserID] = true
		}
	}

	fmt.Println("PieTracker statistics")
	fmt.Println(strings.Repeat("=", 30))
	fmt.Printf("Total users:    %d\n", len(users))
	fmt.Printf("Active users:   %d\n", active)
	fmt.Printf("Inactive users: %d\n", len(users)-active)
	fmt.Printf("Admin users:    %d\n", admins)
	fmt.Printf("Users with data: %d\n", len(owners))
}
