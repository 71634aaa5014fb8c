package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://api.example.com/v1/packages"

func TestBuildURL_Examples(t *testing.T) {
	tests := []struct {
		name     string
		sel      Selections
		expected string
	}{
		{
			name:     "single platform only",
			sel:      Selections{Platforms: []Platform{PlatformMac}},
			expected: baseURL + "?platform%5B%5D=mac",
		},
		{
			name: "all parameters",
			sel: Selections{
				Platforms:     []Platform{PlatformWindows, PlatformLinux},
				ConfigType:    ConfigTypeUser,
				SearchPackage: "7zip",
			},
			expected: baseURL + "?platform%5B%5D=windows&platform%5B%5D=linux&configType=user&searchPackage=7zip",
		},
		{
			name: "computer config type",
			sel: Selections{
				Platforms:  []Platform{PlatformLinux},
				ConfigType: ConfigTypeComputer,
			},
			expected: baseURL + "?platform%5B%5D=linux&configType=computer",
		},
		{
			name:     "no parameters leaves base untouched",
			sel:      Selections{},
			expected: baseURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildURL(baseURL, tt.sel))
		})
	}
}

func TestBuildURL_CanonicalPlatformOrder(t *testing.T) {
	subsets := [][]Platform{
		{PlatformWindows},
		{PlatformMac},
		{PlatformLinux},
		{PlatformLinux, PlatformWindows},
		{PlatformMac, PlatformWindows},
		{PlatformLinux, PlatformMac},
		{PlatformLinux, PlatformMac, PlatformWindows},
		{PlatformMac, PlatformLinux, PlatformWindows},
	}

	for _, subset := range subsets {
		got := BuildURL(baseURL, Selections{Platforms: subset})
		query := strings.TrimPrefix(got, baseURL+"?")
		params := strings.Split(query, "&")

		require.Len(t, params, len(subset), "one parameter per platform in %v", subset)

		var names []string
		for _, p := range params {
			require.True(t, strings.HasPrefix(p, "platform%5B%5D="), "unexpected parameter %q", p)
			names = append(names, strings.TrimPrefix(p, "platform%5B%5D="))
		}

		var want []string
		for _, p := range Platforms {
			for _, s := range subset {
				if s == p {
					want = append(want, string(p))
				}
			}
		}
		assert.Equal(t, want, names)
	}
}

func TestBuildURL_ConfigTypeNoneOmitted(t *testing.T) {
	got := BuildURL(baseURL, Selections{Platforms: []Platform{PlatformMac}, ConfigType: ConfigTypeNone})
	assert.NotContains(t, got, "configType")

	for _, ct := range []ConfigType{ConfigTypeComputer, ConfigTypeUser} {
		got := BuildURL(baseURL, Selections{Platforms: []Platform{PlatformMac}, ConfigType: ct})
		assert.Equal(t, 1, strings.Count(got, "configType="+string(ct)))
	}
}

func TestBuildURL_SearchPackageEncoding(t *testing.T) {
	tests := []struct {
		search   string
		expected string
	}{
		{"7zip", "searchPackage=7zip"},
		{"google chrome", "searchPackage=google%20chrome"},
		{"c++", "searchPackage=c%2B%2B"},
		{"a&b=c", "searchPackage=a%26b%3Dc"},
		{"name~v1.2_x-y", "searchPackage=name~v1.2_x-y"},
		{"café", "searchPackage=caf%C3%A9"},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			got := BuildURL(baseURL, Selections{Platforms: []Platform{PlatformMac}, SearchPackage: tt.search})
			assert.True(t, strings.HasSuffix(got, "&"+tt.expected), "got %s", got)
			assert.Equal(t, 1, strings.Count(got, "searchPackage="))
		})
	}

	got := BuildURL(baseURL, Selections{Platforms: []Platform{PlatformMac}})
	assert.NotContains(t, got, "searchPackage")
}

func TestSortPlatforms_DropsDuplicatesAndUnknown(t *testing.T) {
	got := SortPlatforms([]Platform{PlatformLinux, "beos", PlatformWindows, PlatformLinux})
	assert.Equal(t, []Platform{PlatformWindows, PlatformLinux}, got)
}

func TestParsePlatform(t *testing.T) {
	p, err := ParsePlatform("mac")
	require.NoError(t, err)
	assert.Equal(t, PlatformMac, p)

	_, err = ParsePlatform("Mac")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown platform")
}

func TestParseConfigType(t *testing.T) {
	tests := []struct {
		input    string
		expected ConfigType
		wantErr  bool
	}{
		{"None", ConfigTypeNone, false},
		{"", ConfigTypeNone, false},
		{"computer", ConfigTypeComputer, false},
		{"user", ConfigTypeUser, false},
		{"device", ConfigTypeNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseConfigType(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestConfigTypeString(t *testing.T) {
	assert.Equal(t, "None", ConfigTypeNone.String())
	assert.Equal(t, "user", ConfigTypeUser.String())
}
