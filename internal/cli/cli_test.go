package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/pageza/repas/backend/internal/errors"
	"github.com/pageza/repas/backend/internal/ingredients"
	"github.com/pageza/repas/backend/internal/service"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewCommand("test")
	cmd.Writer = &out
	cmd.ErrWriter = &bytes.Buffer{}
	cmd.Reader = strings.NewReader(stdin)

	err := cmd.Run(context.Background(), append([]string{"repas"}, args...))
	return out.String(), err
}

func TestExtractCmd(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"argument", "", []string{"extract", "J'ai du fromage et des oeufs"}, "fromage\noeufs\n"},
		{"several arguments", "", []string{"extract", "riz", "et", "thon"}, "riz\nthon\n"},
		{"stdin", "Poulet\ncarotte", []string{"extract"}, "carotte\npoulet\n"},
		{"dash reads stdin", "lait", []string{"extract", "-"}, "lait\n"},
		{"no match", "", []string{"extract", "bonjour"}, ""},
		{"tokens", "", []string{"extract", "--tokens", "Du riz, ou pas"}, "riz\npas\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVocabularyCmd(t *testing.T) {
	got, err := run(t, "", "vocabulary")
	require.NoError(t, err)
	assert.Equal(t, strings.Join(ingredients.Vocabulary(), "\n")+"\n", got)
}

func TestRecipeCmd_DryRun(t *testing.T) {
	got, err := run(t, "", "recipe", "--dry-run", "--calories", "650", "riz", "thon")
	require.NoError(t, err)
	assert.Equal(t, service.BuildPrompt([]string{"riz", "thon"}, 650)+"\n", got)

	got, err = run(t, "", "recipe", "--dry-run", "riz")
	require.NoError(t, err)
	assert.Contains(t, got, "limite de 800 kcal")
}

func TestRecipeCmd_Errors(t *testing.T) {
	_, err := run(t, "", "recipe", "--dry-run")
	assert.ErrorContains(t, err, "at least one ingredient is required")

	_, err = run(t, "", "recipe", "--dry-run", "--calories", "-5", "riz")
	assert.ErrorContains(t, err, "invalid calorie budget")
}

func TestRecipeCmd_Generate(t *testing.T) {
	var got service.ChatRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		fmt.Fprint(w, `{"choices":[{"message":{"content":"Riz au thon\n"}}]}`)
	}))
	defer ts.Close()

	t.Setenv("ENV", "test")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_URL", ts.URL)
	t.Setenv("OPENAI_API_KEY", "dummy")

	out, err := run(t, "", "recipe", "riz", "thon")
	require.NoError(t, err)
	assert.Equal(t, "Riz au thon\n", out)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, service.BuildPrompt([]string{"riz", "thon"}, 800), got.Messages[1].Content)
}

func TestRecipeCmd_MissingKey(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY_FILE", "")

	_, err := run(t, "", "recipe", "riz")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeConfiguration, apperrors.CodeOf(err))
}

func TestNewCommand_Structure(t *testing.T) {
	cmd := NewCommand("test")
	assert.Equal(t, "repas", cmd.Name)

	names := make([]string, 0, len(cmd.Commands))
	for _, c := range cmd.Commands {
		assert.NotEmpty(t, c.Usage, c.Name)
		assert.NotNil(t, c.Action, c.Name)
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"serve", "extract", "recipe", "vocabulary"}, names)
}
