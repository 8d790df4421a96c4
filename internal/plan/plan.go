// Package plan holds the fixed 25-day study plan: three topics per day and
// five categories covering contiguous day ranges.
package plan

import (
	"fmt"
	"slices"

	"github.com/akyairhashvil/prep-tracker/internal/config"
	"github.com/akyairhashvil/prep-tracker/internal/models"
)

var topics = map[int][config.TopicsPerDay]string{
	1:  {"Time and Work", "Time, Speed and Distance", "Permutations and Combinations"},
	2:  {"Percentage", "Numbers", "Average"},
	3:  {"Profit and Loss", "Ratio and Proportion", "Mixtures"},
	4:  {"Probability", "Simple Interest", "Compound Interest"},
	5:  {"HCF and LCM", "Divisibility Rules", "Boats and Streams"},
	6:  {"Pipes and Cisterns", "Partnership", "Problems on Trains"},
	7:  {"Calendar Problems", "Clocks", "Ages"},
	8:  {"Area and Volume", "Data Interpretation", "Mensuration"},
	9:  {"Simplification", "Surds and Indices", "Logarithms"},
	10: {"Square Roots", "Cube Roots", "All Previous Topics Revision"},
	11: {"JavaScript Basics", "Variables & Data Types", "Functions & Scope"},
	12: {"Arrays & Objects", "DOM Manipulation", "Event Handling"},
	13: {"Python Fundamentals", "Lists & Dictionaries", "File Handling"},
	14: {"Java OOP Concepts", "Classes & Objects", "Inheritance"},
	15: {"C++ Pointers", "Memory Management", "STL Containers"},
	16: {"Data Structures", "Arrays & Linked Lists", "Stacks & Queues"},
	17: {"Trees & Graphs", "Binary Search Trees", "Graph Traversal"},
	18: {"Sorting Algorithms", "Searching Algorithms", "Time Complexity"},
	19: {"Dynamic Programming", "Recursion", "Backtracking"},
	20: {"Database Concepts", "SQL Queries", "Normalization"},
	21: {"Operating Systems", "Process Management", "Memory Management"},
	22: {"Computer Networks", "TCP/IP", "HTTP/HTTPS"},
	23: {"System Design", "Scalability", "Load Balancing"},
	24: {"Web Development", "React/Angular", "REST APIs"},
	25: {"Final Revision", "Mock Interviews", "Coding Practice"},
}

var categories = []models.Category{
	{Name: "Quantitative Aptitude", FirstDay: 1, LastDay: 10, Style: "blue"},
	{Name: "Programming Languages", FirstDay: 11, LastDay: 15, Style: "green"},
	{Name: "Data Structures & Algorithms", FirstDay: 16, LastDay: 20, Style: "purple"},
	{Name: "Computer Science", FirstDay: 21, LastDay: 24, Style: "orange"},
	{Name: "Final Preparation", FirstDay: 25, LastDay: 25, Style: "red"},
}

// validKeys is every composite key the plan can produce.
var validKeys = func() map[string]bool {
	keys := make(map[string]bool, config.TotalTopics)
	for day, names := range topics {
		for _, name := range names {
			keys[Key(day, name)] = true
		}
	}
	return keys
}()

// Topics returns the ordered topics for day, or nil when day is outside the plan.
func Topics(day int) []string {
	names, ok := topics[day]
	if !ok {
		return nil
	}
	return names[:]
}

// HasTopic reports whether topic is one of day's topics.
func HasTopic(day int, topic string) bool {
	return slices.Contains(Topics(day), topic)
}

// Key builds the composite completion key for a (day, topic) pair.
func Key(day int, topic string) string {
	return fmt.Sprintf("%d-%s", day, topic)
}

// ValidKey reports whether key names a topic that exists in the plan.
func ValidKey(key string) bool {
	return validKeys[key]
}

// ValidDay reports whether day is inside the plan.
func ValidDay(day int) bool {
	return day >= config.FirstDay && day <= config.TotalDays
}

// Categories returns the category table in day order.
func Categories() []models.Category {
	return slices.Clone(categories)
}

// CategoryFor returns the category owning day. Days past the last range map
// to the final category, days before the first to the first.
func CategoryFor(day int) models.Category {
	for _, c := range categories {
		if day <= c.LastDay {
			return c
		}
	}
	return categories[len(categories)-1]
}
