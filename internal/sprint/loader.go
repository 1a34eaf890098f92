package sprint

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// defaultName is used when a sprint document declares no display name.
const defaultName = "Unknown Sprint"

// document mirrors the raw YAML shape of a sprint file.
type document struct {
	ID        string         `yaml:"id"`
	Name      string         `yaml:"name"`
	StartDate string         `yaml:"start_date"`
	EndDate   string         `yaml:"end_date"`
	Goals     []string       `yaml:"goals"`
	Tasks     []taskDocument `yaml:"tasks"`
}

type taskDocument struct {
	ID            string `yaml:"id"`
	Title         string `yaml:"title"`
	Status        string `yaml:"status"`
	StoryPoints   *int   `yaml:"story_points"`
	CompletedDate string `yaml:"completed_date"`
}

// Load reads a sprint YAML file and constructs a validated Sprint. The file
// stem serves as the sprint id when the document declares none.
func Load(path string) (*Sprint, error) {
	data, readErr := os.ReadFile(path) //nolint:gosec // path comes from the CLI user
	if readErr != nil {
		return nil, fmt.Errorf("read sprint file: %w", readErr)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	return Parse(data, stem)
}

// Parse constructs a validated Sprint from raw YAML bytes. The document is
// checked against the embedded schema before any model construction, so a
// malformed file fails as one ErrValidation without partial results.
func Parse(data []byte, fallbackID string) (*Sprint, error) {
	schemaErr := validateSchema(data)
	if schemaErr != nil {
		return nil, schemaErr
	}

	var doc document

	unmarshalErr := yaml.Unmarshal(data, &doc)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, unmarshalErr)
	}

	start, startErr := parseDate(doc.StartDate, "start_date")
	if startErr != nil {
		return nil, startErr
	}

	end, endErr := parseDate(doc.EndDate, "end_date")
	if endErr != nil {
		return nil, endErr
	}

	tasks, tasksErr := buildTasks(doc.Tasks)
	if tasksErr != nil {
		return nil, tasksErr
	}

	id := doc.ID
	if id == "" {
		id = fallbackID
	}

	name := doc.Name
	if name == "" {
		name = defaultName
	}

	return New(id, name, start, end, doc.Goals, tasks)
}

func buildTasks(docs []taskDocument) ([]Task, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	tasks := make([]Task, 0, len(docs))

	for _, td := range docs {
		task := Task{
			ID:          td.ID,
			Title:       td.Title,
			Status:      td.Status,
			StoryPoints: DefaultStoryPoints,
		}

		if task.Status == "" {
			task.Status = StatusPending
		}

		if td.StoryPoints != nil {
			task.StoryPoints = *td.StoryPoints
		}

		if td.CompletedDate != "" {
			completed, err := parseDate(td.CompletedDate, "completed_date")
			if err != nil {
				return nil, fmt.Errorf("task %q: %w", td.ID, err)
			}

			task.CompletedDate = completed
		}

		tasks = append(tasks, task)
	}

	return tasks, nil
}

func parseDate(value, field string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q", ErrBadDate, field, value)
	}

	return parsed, nil
}
