package yaml_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/fwojciec/kcparse"
	kcyaml "github.com/fwojciec/kcparse/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFormatter_Format(t *testing.T) {
	t.Parallel()

	t.Run("writes single-key mapping", func(t *testing.T) {
		t.Parallel()

		r := kcparse.NewResult(kcparse.KindFilms)
		r.Add(&kcparse.Item{Name: "Alien", Date: "1979", Extensions: []string{"R", "1h 57m"}})

		var buf bytes.Buffer
		require.NoError(t, kcyaml.NewFormatter().Format(&buf, r))

		var decoded map[string][]kcparse.Item
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded["films"], 1)
		assert.Equal(t, kcparse.Item{Name: "Alien", Date: "1979", Extensions: []string{"R", "1h 57m"}}, decoded["films"][0])
		assert.NotContains(t, buf.String(), "link:")
	})

	t.Run("writes one document per result", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := kcyaml.NewFormatter().Format(&buf, kcparse.NewResult(kcparse.KindBooks), kcparse.NewResult(kcparse.KindItems))
		require.NoError(t, err)

		dec := yaml.NewDecoder(&buf)
		var keys []string
		for {
			var doc map[string][]kcparse.Item
			err := dec.Decode(&doc)
			if errors.Is(err, io.EOF) {
				break
			}
			require.NoError(t, err)
			for k, v := range doc {
				keys = append(keys, k)
				assert.Empty(t, v)
			}
		}
		assert.Equal(t, []string{"books", "items"}, keys)
	})
}
