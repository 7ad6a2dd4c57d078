package path_test

import (
	"testing"

	"github.com/lazypath/lazypath/pkg/filesystem/path"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestWindowsFormatParse(t *testing.T) {
	t.Run("Shape", func(t *testing.T) {
		for _, p := range []struct {
			input    string
			absolute bool
			rendered string
		}{
			{"", false, "."},
			{".", false, "."},
			{"foo", false, "foo"},
			{"foo\\bar", false, "foo\\bar"},
			{"foo/bar", false, "foo\\bar"},
			{"foo\\..\\bar", false, "foo\\..\\bar"},
			{"\\", true, "\\"},
			{"\\foo\\bar\\", true, "\\foo\\bar"},
			{"/foo/bar", true, "\\foo\\bar"},
			{"C:", true, "C:\\"},
			{"c:\\foo", true, "C:\\foo"},
			{"C:/foo//bar", true, "C:\\foo\\bar"},
			{"\\\\server\\share", true, "\\\\server\\share"},
			{"\\\\server\\share\\foo", true, "\\\\server\\share\\foo"},
			{"//server/share/foo", true, "\\\\server\\share\\foo"},
			{"\\\\?\\C:\\foo", true, "C:\\foo"},
			{"\\\\?\\UNC\\server\\share\\foo", true, "\\\\server\\share\\foo"},
			{"\\??\\C:\\foo", true, "C:\\foo"},
		} {
			parsed, err := path.WindowsFormat.Parse(p.input)
			require.NoError(t, err, "input %#v", p.input)
			require.Equal(t, p.absolute, parsed.IsAbsolute(), "input %#v", p.input)
			s, err := parsed.GetWindowsString()
			require.NoError(t, err, "input %#v", p.input)
			require.Equal(t, p.rendered, s, "input %#v", p.input)
		}
	})

	t.Run("IncompleteUNCPrefix", func(t *testing.T) {
		// Malformed prefixes are parse errors, not I/O errors.
		_, err := path.WindowsFormat.Parse("\\\\")
		require.Equal(t, status.Error(codes.InvalidArgument, "Invalid UNC path: expected a non-empty server and share name"), err)

		_, err = path.WindowsFormat.Parse("\\\\\\share")
		require.Equal(t, status.Error(codes.InvalidArgument, "Invalid UNC path: expected a non-empty server name"), err)

		_, err = path.WindowsFormat.Parse("\\\\server\\")
		require.Equal(t, status.Error(codes.InvalidArgument, "Invalid UNC path: expected a non-empty share name"), err)
	})

	t.Run("InvalidComponent", func(t *testing.T) {
		for _, input := range []string{
			"foo\\a<b",
			"foo\\a|b",
			"foo\\trailing.",
			"foo\\trailing ",
			"foo\\NUL",
			"foo\\com1.txt",
		} {
			_, err := path.WindowsFormat.Parse(input)
			require.Error(t, err, "input %#v", input)
			require.Equal(t, codes.InvalidArgument, status.Code(err), "input %#v", input)
		}
	})

	t.Run("NullByte", func(t *testing.T) {
		_, err := path.WindowsFormat.Parse("foo\x00bar")
		require.Equal(t, status.Error(codes.InvalidArgument, "Path contains a null byte"), err)
	})

	t.Run("UNIXStringRendering", func(t *testing.T) {
		// Drive and share roots have no native UNIX form; they
		// are emitted with forward slashes.
		parsed, err := path.WindowsFormat.Parse("C:\\foo\\bar")
		require.NoError(t, err)
		require.Equal(t, "C:/foo/bar", parsed.GetUNIXString())

		parsed, err = path.WindowsFormat.Parse("\\\\server\\share\\foo")
		require.NoError(t, err)
		require.Equal(t, "//server/share/foo", parsed.GetUNIXString())
	})
}
