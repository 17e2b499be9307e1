package annotate

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ahmetb/foodshare/internal/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var testNow = time.Date(2025, 1, 15, 11, 0, 0, 0, time.UTC)

const boardYAML = `profile:
  name: Arjun Sharma
listings:
  - id: a1
    title: Vegetable Biryani
    expiresAt: 2025-01-15T14:00:00Z
    postedBy: Rahul S.
  - id: a2
    title: Pizza Slices
    expiresAt: 2025-01-15T12:30:00.000Z
    postedBy: Anjali P.
  - id: b1
    title: Pasta Leftovers
    expiresAt: 2025-01-15T10:30:00Z
    postedBy: Arjun Sharma
  - id: c1
    title: Fruit Salad
    expiresAt: 2025-01-15T10:00:00Z
    postedBy: Meera K.
    claimedBy: Arjun Sharma
notifications:
  - id: n1
    title: New Food Available
    timestamp: 2025-01-15T10:35:00Z
  - id: n2
    title: Welcome to FoodShare
    timestamp: 2025-01-08T11:00:00Z
`

// parseYAML is a test helper that parses YAML text and returns the root MappingNode.
func parseYAML(t *testing.T, input string) *yaml.Node {
	t.Helper()
	var doc yaml.Node
	err := yaml.Unmarshal([]byte(input), &doc)
	require.NoError(t, err)
	require.Equal(t, yaml.DocumentNode, doc.Kind)
	require.NotEmpty(t, doc.Content)
	return doc.Content[0]
}

// encodeYAML encodes a MappingNode back to YAML text.
func encodeYAML(t *testing.T, root *yaml.Node) string {
	t.Helper()
	doc := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{root},
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	require.NoError(t, enc.Encode(doc))
	require.NoError(t, enc.Close())
	return buf.String()
}

func TestAnnotate_Inline(t *testing.T) {
	root := parseYAML(t, boardYAML)

	n, err := Annotate(root, Options{Now: testNow})
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	output := encodeYAML(t, root)
	assert.Contains(t, output, "expiresAt: 2025-01-15T14:00:00Z # 3h 0m remaining\n")
	assert.Contains(t, output, "expiresAt: 2025-01-15T12:30:00.000Z # 1h 30m remaining\n")
	assert.Contains(t, output, "expiresAt: 2025-01-15T10:30:00Z # Expired\n")
	assert.Contains(t, output, "expiresAt: 2025-01-15T10:00:00Z # claimed by Arjun Sharma\n")
	assert.Contains(t, output, "timestamp: 2025-01-15T10:35:00Z # 25 minutes ago\n")
	assert.Contains(t, output, "timestamp: 2025-01-08T11:00:00Z # 7 days ago\n")

	// untouched fields stay bare
	assert.Contains(t, output, "title: Vegetable Biryani\n")
	assert.Contains(t, output, "name: Arjun Sharma\n")
}

func TestAnnotate_AboveMode(t *testing.T) {
	root := parseYAML(t, "listings:\n  - id: a1\n    expiresAt: 2025-01-15T11:45:00Z\n")

	_, err := Annotate(root, Options{Above: true, Now: testNow})
	require.NoError(t, err)
	output := encodeYAML(t, root)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "    # 45m remaining", lines[2])
	assert.Equal(t, "    expiresAt: 2025-01-15T11:45:00Z", lines[3])
}

func TestAnnotate_InvalidTimestampLeavesTreeUntouched(t *testing.T) {
	input := "listings:\n  - id: a1\n    expiresAt: 2025-01-15T14:00:00Z\nnotifications:\n  - id: n1\n    timestamp: last tuesday\n"
	root := parseYAML(t, input)

	_, err := Annotate(root, Options{Now: testNow})
	require.Error(t, err)
	assert.ErrorIs(t, err, timeutil.ErrInvalidTimestamp)
	assert.Contains(t, err.Error(), "notifications[0].timestamp")

	assert.Equal(t, input, encodeYAML(t, root))
}

func TestAnnotate_MissingSections(t *testing.T) {
	root := parseYAML(t, "profile:\n  name: Arjun Sharma\n")
	n, err := Annotate(root, Options{Now: testNow})
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestAnnotate_SkipsItemsWithoutTimestamp(t *testing.T) {
	root := parseYAML(t, "listings:\n  - id: a1\n  - plain\nnotifications: []\n")
	n, err := Annotate(root, Options{Now: testNow})
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestAnnotate_RootNotMapping(t *testing.T) {
	root := parseYAML(t, "- a\n- b\n")
	_, err := Annotate(root, Options{Now: testNow})
	assert.Error(t, err)
}

func TestFindMappingField(t *testing.T) {
	root := parseYAML(t, "a: 1\nb:\n  c: 2\n")

	k, v := findMappingField(root, "b")
	require.NotNil(t, k)
	assert.Equal(t, "b", k.Value)
	assert.Equal(t, yaml.MappingNode, v.Kind)

	k, v = findMappingField(root, "zz")
	assert.Nil(t, k)
	assert.Nil(t, v)

	k, v = findMappingField(nil, "a")
	assert.Nil(t, k)
	assert.Nil(t, v)

	assert.Equal(t, "1", scalarField(root, "a"))
	assert.Equal(t, "", scalarField(root, "b"))
}
