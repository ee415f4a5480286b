package main

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/fridgechef/internal/client"
	"github.com/pageza/fridgechef/internal/fakeapi"
	"github.com/pageza/fridgechef/internal/service"
	"github.com/pageza/fridgechef/internal/session"
)

var tokenLine = regexp.MustCompile(`export FRIDGECHEF_TOKEN=(\S+)`)

// setupCLI points the CLI at a fresh stub backend with a file-backed session
func setupCLI(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(fakeapi.New(fakeapi.Options{}))
	t.Cleanup(srv.Close)

	t.Setenv("API_BASE_URL", srv.URL)
	t.Setenv("SESSION_BACKEND", "sqlite")
	t.Setenv("SESSION_PATH", filepath.Join(t.TempDir(), "session.db"))
	t.Setenv("S3_BUCKET_NAME", "")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("FRIDGECHEF_CONFIG", "")
	t.Setenv(tokenEnv, "")
	t.Setenv(passwordEnv, "")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runWithInput(t, "", args...)
}

func runWithInput(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	opts := &options{}
	defer opts.close()
	cmd := newRootCmd(opts)
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func login(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	require.NoError(t, err)
	m := tokenLine.FindStringSubmatch(out)
	require.Len(t, m, 2, out)
	return m[1]
}

func TestSignupLoginLogout(t *testing.T) {
	setupCLI(t)

	token := login(t, "signup", "--name", "Ada Lovelace", "--email", "ada@example.com", "--password", "secret123")
	assert.NotEmpty(t, token)

	out, err := run(t, "whoami", "--token", token)
	require.NoError(t, err)
	assert.Contains(t, out, "[AL] Ada Lovelace")

	_, err = run(t, "logout")
	require.NoError(t, err)

	_, err = run(t, "whoami", "--token", token)
	assert.ErrorIs(t, err, session.ErrNoSession)
	assert.Contains(t, formatError(err), "not signed in")

	t.Setenv(tokenEnv, login(t, "login", "--email", "ada@example.com", "--password", "secret123"))
	out, err = run(t, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada Lovelace")
}

func TestPasswordSources(t *testing.T) {
	setupCLI(t)

	out, err := runWithInput(t, "secret123\n", "signup", "--name", "Ada", "--email", "ada@example.com", "--password-stdin")
	require.NoError(t, err)
	assert.Regexp(t, tokenLine, out)

	t.Setenv(passwordEnv, "secret123")
	login(t, "login", "--email", "ada@example.com")

	// the flag wins over the environment
	_, err = run(t, "login", "--email", "ada@example.com", "--password", "wrong-password")
	assert.Equal(t, 401, client.StatusCode(err))

	_, err = runWithInput(t, "", "login", "--email", "ada@example.com", "--password-stdin")
	assert.ErrorContains(t, err, "failed to read password from stdin")

	_, err = run(t, "login", "--email", "ada@example.com", "--password", "x", "--password-stdin")
	assert.Error(t, err)
}

func TestLoginValidation(t *testing.T) {
	setupCLI(t)

	_, err := run(t, "login", "--email", "nope", "--password", "123")
	var verrs service.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	msg := formatError(err)
	assert.Contains(t, msg, "Please enter a valid email")
	assert.Contains(t, msg, "Password should be at least 6 characters")

	_, err = run(t, "login", "--email", "ghost@example.com", "--password", "secret123")
	assert.Equal(t, 401, client.StatusCode(err))
}

func TestRecipeCommands(t *testing.T) {
	setupCLI(t)
	t.Setenv(tokenEnv, login(t, "signup", "--name", "Cook", "--email", "cook@example.com", "--password", "secret123"))

	out, err := run(t, "recipes", "add",
		"--name", "Tomato Soup",
		"--category", "soupsAndStews",
		"--cuisine", "Italian",
		"--ingredient", "Tomato=4",
		"--ingredient", "Basil = 1 bunch",
		"--instructions", "Simmer.")
	require.NoError(t, err)
	assert.Contains(t, out, "Soups & Stews")
	assert.Contains(t, out, "asset://images/demoRecipe.jpeg")
	id := strings.TrimSpace(strings.TrimPrefix(regexp.MustCompile(`ID:\s+\S+`).FindString(out), "ID:"))
	require.NotEmpty(t, id)

	_, err = run(t, "recipes", "add", "--name", "Broken", "--ingredient", "Salt")
	var verrs service.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.NotEmpty(t, verrs.Field("ingredients[0]"))

	out, err = run(t, "recipes", "search", "--ingredients", "basil")
	require.NoError(t, err)
	assert.Contains(t, out, "Tomato Soup")

	out, err = run(t, "recipes", "search", "--text", "nothing-here")
	require.NoError(t, err)
	assert.Contains(t, out, "No recipes found.")

	_, err = run(t, "recipes", "search")
	assert.Error(t, err)

	out, err = run(t, "recipes", "mine")
	require.NoError(t, err)
	assert.Contains(t, out, "Tomato Soup")

	out, err = run(t, "recipes", "explore", "--category", "soupsAndStews")
	require.NoError(t, err)
	assert.Contains(t, out, "Tomato Soup")

	_, err = run(t, "recipes", "explore", "--category", "brunch")
	assert.Error(t, err)

	out, err = run(t, "recipes", "rate", id, "4")
	require.NoError(t, err)
	assert.Contains(t, out, "4.0")

	_, err = run(t, "recipes", "rate", id, "9")
	assert.ErrorAs(t, err, &verrs)

	out, err = run(t, "recipes", "edit", id,
		"--name", "Roast Tomato Soup",
		"--category", "soupsAndStews",
		"--cuisine", "Italian",
		"--ingredient", "Tomato=6",
		"--instructions", "Roast, then simmer.")
	require.NoError(t, err)
	assert.Contains(t, out, "Roast Tomato Soup")

	out, err = run(t, "recipes", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Roast Tomato Soup")

	_, err = run(t, "recipes", "delete", id)
	require.NoError(t, err)
	_, err = run(t, "recipes", "show", id)
	assert.Equal(t, 404, client.StatusCode(err))
}

func TestRecipeImageWithoutStorage(t *testing.T) {
	setupCLI(t)
	t.Setenv(tokenEnv, login(t, "signup", "--name", "Cook", "--email", "cook@example.com", "--password", "secret123"))

	photo := filepath.Join(t.TempDir(), "soup.png")
	require.NoError(t, os.WriteFile(photo, []byte("\x89PNG\r\n\x1a\n"), 0o600))

	_, err := run(t, "recipes", "add",
		"--name", "Soup", "--category", "soupsAndStews", "--cuisine", "Any",
		"--ingredient", "Water=1l", "--instructions", "Boil.", "--image", photo)
	assert.True(t, errors.Is(err, service.ErrImageStorageDisabled))
}

func TestUsersAndFridge(t *testing.T) {
	setupCLI(t)
	login(t, "signup", "--name", "Bob", "--email", "bob@example.com", "--password", "secret123")
	t.Setenv(tokenEnv, login(t, "signup", "--name", "Ada", "--email", "ada@example.com", "--password", "secret123"))

	out, err := run(t, "users", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Bob")

	bobID := strings.Fields(strings.Split(out, "\n")[1])[0]

	out, err = run(t, "users", "follow", bobID)
	require.NoError(t, err)
	assert.Contains(t, out, "Bob: followed (1 followers)")

	out, err = run(t, "users", "unfollow", bobID)
	require.NoError(t, err)
	assert.Contains(t, out, "Bob: not followed (0 followers)")

	_, err = run(t, "recipes", "add",
		"--name", "Omelette", "--category", "breakfastAndMorningMeals", "--cuisine", "French",
		"--ingredient", "Egg=3", "--instructions", "Whisk and cook.")
	require.NoError(t, err)

	photo := filepath.Join(t.TempDir(), "egg_milk.jpg")
	require.NoError(t, os.WriteFile(photo, []byte("jpeg bytes"), 0o600))
	out, err = run(t, "fridge", "scan", photo)
	require.NoError(t, err)
	assert.Contains(t, out, "Detected: egg, milk")
	assert.Contains(t, out, "Omelette")
}

func TestCategories(t *testing.T) {
	out, err := run(t, "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "streetFoodAndSnacks")
	assert.Contains(t, out, "quickAndEasy")
}

func TestExpiredOrMissingToken(t *testing.T) {
	setupCLI(t)
	login(t, "signup", "--name", "Ada", "--email", "ada@example.com", "--password", "secret123")

	_, err := run(t, "recipes", "add",
		"--name", "Soup", "--category", "soupsAndStews", "--cuisine", "Any",
		"--ingredient", "Water=1l", "--instructions", "Boil.")
	assert.Equal(t, 401, client.StatusCode(err))
	assert.Contains(t, formatError(err), "server responded 401")
}
