package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"error": err.Error()})
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case []User:
		o.printUsers(v)
	case TokenResult:
		fmt.Printf("Token: %s\n", v.Token)
	case Resource:
		o.printResource(v)
	case []Resource:
		o.printResources(v)
	case StatusResult:
		fmt.Println(v.Message)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

// TokenResult response type
type TokenResult struct {
	Token string `json:"token"`
}

// Resource response type
type Resource struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// StatusResult response type
type StatusResult struct {
	Message string `json:"message"`
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s (id %d)\n", u.Username, u.ID)
}

func (o *Output) printUsers(users []User) {
	if len(users) == 0 {
		fmt.Println("No users")
		return
	}
	fmt.Printf("Users (%d):\n", len(users))
	for _, u := range users {
		fmt.Printf("  %3d  %s\n", u.ID, u.Username)
	}
}

func (o *Output) printResource(r Resource) {
	fmt.Printf("%s (id %d)\n", r.Name, r.ID)
}

func (o *Output) printResources(resources []Resource) {
	if len(resources) == 0 {
		fmt.Println("No records")
		return
	}
	for _, r := range resources {
		fmt.Printf("  %3d  %s\n", r.ID, r.Name)
	}
}
