package pathing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wrenfell/filesource/internal/pathing"
)

// TestMetaPath_Table tests metadata path derivation across extension shapes.
func TestMetaPath_Table(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		path    string
		want    string
		wantErr error
	}{
		{"Success_Simple", "image.png", "image.png.meta", nil},
		{"Success_Relative", "assets/models/ship.gltf", "assets/models/ship.gltf.meta", nil},
		{"Success_Absolute", "/srv/assets/track.ogg", "/srv/assets/track.ogg.meta", nil},
		{"Success_DoubleExtension", "archive.tar.gz", "archive.tar.gz.meta", nil},
		{"Error_NoExtension", "README", "", pathing.ErrNoExtension},
		{"Error_NoExtensionInDir", "assets/README", "", pathing.ErrNoExtension},
		{"Error_Dotfile", ".env", "", pathing.ErrNoExtension},
		{"Error_CurrentDir", ".", "", pathing.ErrNoExtension},
		{"Error_ParentDir", "..", "", pathing.ErrNoExtension},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := pathing.MetaPath(tc.path)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestSplitURI_Table tests asset URI splitting into scheme and path.
func TestSplitURI_Table(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		uri        string
		wantScheme string
		wantPath   string
		wantErr    error
	}{
		{"Success_Relative", "file://assets/image.png", "file", "assets/image.png", nil},
		{"Success_Absolute", "file:///srv/assets/image.png", "file", "/srv/assets/image.png", nil},
		{"Success_OtherScheme", "bundle://textures/wall.dds", "bundle", "textures/wall.dds", nil},
		{"Error_NoScheme", "assets/image.png", "", "", pathing.ErrNoScheme},
		{"Error_EmptyScheme", "://assets/image.png", "", "", pathing.ErrNoScheme},
		{"Error_EmptyPath", "file://", "", "", pathing.ErrEmptyPath},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			scheme, path, err := pathing.SplitURI(tc.uri)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantScheme, scheme)
			assert.Equal(t, tc.wantPath, path)
		})
	}
}
