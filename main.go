package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := LoadConfig()

	store, err := OpenStore(cfg.DataFile)
	if err != nil {
		log.Fatalf("Failed to open feedback store: %v", err)
	}

	runMenu(store, bufio.NewReader(os.Stdin), os.Stdout)
}

func runMenu(store *Store, in *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintln(out, "\n=== Student Feedback Management System ===")
		fmt.Fprintln(out, "1. Add Feedback")
		fmt.Fprintln(out, "2. Delete Feedback")
		fmt.Fprintln(out, "3. Search Feedback")
		fmt.Fprintln(out, "4. Display All Feedback")
		fmt.Fprintln(out, "5. Show Advanced Sentiment Analysis")
		fmt.Fprintln(out, "6. Show Rating Distribution")
		fmt.Fprintln(out, "7. Exit")

		choice, ok := prompt(in, out, "\nEnter your choice (1-7): ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			handleAdd(store, in, out)
		case "2":
			handleDelete(store, in, out)
		case "3":
			handleSearch(store, in, out)
		case "4":
			handleDisplayAll(store, out)
		case "5":
			handleSentimentSummary(store, out)
		case "6":
			handleRatingChart(store, out)
		case "7":
			fmt.Fprintln(out, "Thank you for using the Student Feedback Management System!")
			return
		default:
			fmt.Fprintln(out, "Invalid choice! Please try again.")
		}
	}
}

func handleAdd(store *Store, in *bufio.Reader, out io.Writer) {
	regNo, ok := prompt(in, out, "Enter Registration Number: ")
	if !ok {
		return
	}
	name, ok := prompt(in, out, "Enter Student Name: ")
	if !ok {
		return
	}
	course, ok := prompt(in, out, "Enter Course: ")
	if !ok {
		return
	}
	feedback, ok := prompt(in, out, "Enter Feedback: ")
	if !ok {
		return
	}
	rating, ok := prompt(in, out, "Enter Rating (1-10): ")
	if !ok {
		return
	}

	record, err := store.Add(regNo, name, course, feedback, rating)
	if err != nil {
		fmt.Fprintf(out, "Error: %v!\n", err)
		return
	}

	fmt.Fprintln(out, "\nNew Feedback Entry Added:")
	printSeparator(out)
	RenderRecordTable(out, []FeedbackRecord{record})
	printSeparator(out)
}

func handleDelete(store *Store, in *bufio.Reader, out io.Writer) {
	if len(store.All()) == 0 {
		fmt.Fprintln(out, "No feedback entries found!")
		return
	}

	regNo, name, ok := promptSelector(in, out, "Delete")
	if !ok {
		return
	}

	removed, err := store.Delete(regNo, name)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	switch {
	case removed == 0 && regNo != "":
		fmt.Fprintf(out, "No entry found for Registration Number %s.\n", regNo)
	case removed == 0:
		fmt.Fprintf(out, "No entry found for Student Name '%s'.\n", name)
	case regNo != "":
		fmt.Fprintf(out, "Feedback for Registration Number %s deleted.\n", regNo)
	default:
		fmt.Fprintf(out, "Feedback for Student Name '%s' deleted.\n", name)
	}
}

func handleSearch(store *Store, in *bufio.Reader, out io.Writer) {
	if len(store.All()) == 0 {
		fmt.Fprintln(out, "No feedback entries found!")
		return
	}

	regNo, name, ok := promptSelector(in, out, "Search")
	if !ok {
		return
	}

	results, err := store.Search(regNo, name)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	if len(results) == 0 {
		fmt.Fprintln(out, "No matching feedback found.")
		return
	}

	fmt.Fprintln(out, "\nSearch Results:")
	printSeparator(out)
	RenderRecordTable(out, results)
	printSeparator(out)
}

func handleDisplayAll(store *Store, out io.Writer) {
	records := store.All()
	if len(records) == 0 {
		fmt.Fprintln(out, "No feedback entries found!")
		return
	}
	fmt.Fprintln(out, "\nAll Feedback Entries:")
	printSeparator(out)
	RenderRecordTable(out, records)
	printSeparator(out)
}

func handleSentimentSummary(store *Store, out io.Writer) {
	records := store.All()
	if len(records) == 0 {
		fmt.Fprintln(out, "No feedback entries found!")
		return
	}
	RenderSentimentSummary(out, BuildSentimentSummary(records))
	handleRatingChart(store, out)
}

func handleRatingChart(store *Store, out io.Writer) {
	records := store.All()
	if len(records) == 0 {
		fmt.Fprintln(out, "No feedback entries found!")
		return
	}
	dist := BuildRatingDistribution(records)
	if dist.Total == 0 {
		fmt.Fprintln(out, "No valid ratings found!")
		return
	}
	fmt.Fprint(out, RenderRatingChart(dist))
	printSeparator(out)
}

// promptSelector runs the delete/search sub-menu and returns exactly one of
// registration number or student name.
func promptSelector(in *bufio.Reader, out io.Writer, verb string) (regNo, name string, ok bool) {
	fmt.Fprintf(out, "\n%s by:\n", verb)
	fmt.Fprintln(out, "1. Registration Number")
	fmt.Fprintln(out, "2. Student Name")

	choice, ok := prompt(in, out, "Enter your choice (1-2): ")
	if !ok {
		return "", "", false
	}
	switch choice {
	case "1":
		regNo, ok = prompt(in, out, "Enter Registration Number: ")
		return regNo, "", ok
	case "2":
		name, ok = prompt(in, out, "Enter Student Name: ")
		return "", name, ok
	default:
		fmt.Fprintln(out, "Invalid choice!")
		return "", "", false
	}
}

func prompt(in *bufio.Reader, out io.Writer, label string) (string, bool) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}
