package notice

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Run(`every notice renders`, func(t *testing.T) {
		for name := range titles {
			text, err := Render(name, Data{Provider: "Jane Smith", Reference: "x/1/2024", Dates: map[string]string{}})
			require.NoError(t, err, name)
			require.Contains(t, text, "Jane Smith")
			require.NotEmpty(t, Title(name))
		}
	})
	t.Run(`suspension prints review date and categories`, func(t *testing.T) {
		text, err := Render(Suspension, Data{
			Provider:       "Jane Smith",
			Reference:      "suspension/p1/2024",
			IssuedOn:       "1 March 2024",
			RiskCategories: []string{"Safeguarding concern"},
			Dates:          map[string]string{"review": "12 April 2024"},
		})
		require.NoError(t, err)
		require.Contains(t, text, "12 April 2024")
		require.Contains(t, text, "- Safeguarding concern")
		require.NotContains(t, text, "Approved by")
	})
	t.Run(`warning title follows the notice type`, func(t *testing.T) {
		text, err := Render(Warning, Data{NoticeType: "Welfare Requirements Notice", Dates: map[string]string{}})
		require.NoError(t, err)
		require.Contains(t, text, "WELFARE REQUIREMENTS NOTICE")
	})
	t.Run(`unknown notice`, func(t *testing.T) {
		_, err := Render("appeal", Data{})
		require.Error(t, err)
	})
}
