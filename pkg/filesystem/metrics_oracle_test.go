package filesystem_test

import (
	"testing"

	"github.com/lazypath/lazypath/internal/mock"
	"github.com/lazypath/lazypath/pkg/filesystem"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMetricsOracle(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("Success", func(t *testing.T) {
		// Lookup results must be forwarded unmodified.
		base := mock.NewMockOracle(ctrl)
		base.EXPECT().Lookup("/etc/alternatives").
			Return(filesystem.Entry{
				Kind:          filesystem.KindSymlink,
				SymlinkTarget: "/var/lib/alternatives",
			}, nil)
		oracle := filesystem.NewMetricsOracle(base, "success")

		entry, err := oracle.Lookup("/etc/alternatives")
		require.NoError(t, err)
		require.Equal(t, filesystem.Entry{
			Kind:          filesystem.KindSymlink,
			SymlinkTarget: "/var/lib/alternatives",
		}, entry)
	})

	t.Run("Failure", func(t *testing.T) {
		base := mock.NewMockOracle(ctrl)
		base.EXPECT().Lookup("/root/secret").
			Return(filesystem.Entry{}, status.Error(codes.PermissionDenied, "Permission denied"))
		oracle := filesystem.NewMetricsOracle(base, "failure")

		_, err := oracle.Lookup("/root/secret")
		require.Equal(t, status.Error(codes.PermissionDenied, "Permission denied"), err)
	})
}
