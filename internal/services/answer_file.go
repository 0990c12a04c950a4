package services

import (
	"fmt"
	"os"

	"github.com/latestcomment/mind-mirror/internal/models"
	"gopkg.in/yaml.v3"
)

// AnswerFile is the on-disk form of a submission used by the CLI. Answers
// are listed in questionnaire order.
type AnswerFile struct {
	Answers   []string `yaml:"answers"`
	FreeWrite string   `yaml:"free_write"`
}

func LoadAnswerFile(path string) (*AnswerFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers file: %w", err)
	}
	var f AnswerFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse answers file %s: %w", path, err)
	}
	return &f, nil
}

// ResponseMap pairs the listed answers with the prompts of qs.
func (f *AnswerFile) ResponseMap(qs *models.QuestionSet) (models.ResponseMap, error) {
	prompts := qs.Prompts()
	if len(f.Answers) < len(prompts) {
		return nil, fmt.Errorf("%w: %q", ErrMissingInput, prompts[len(f.Answers)])
	}
	if len(f.Answers) > len(prompts) {
		return nil, fmt.Errorf("%w: %d answers given, questionnaire has %d", ErrUnknownPrompt, len(f.Answers), len(prompts))
	}

	responses := make(models.ResponseMap, len(prompts))
	for i, p := range prompts {
		responses[p] = f.Answers[i]
	}
	return responses, nil
}
