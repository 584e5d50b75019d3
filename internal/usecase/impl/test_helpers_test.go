package impl

import (
	"fmt"
	"io"
	"log/slog"

	"walletportal/config"
	"walletportal/internal/domain/entity"
)

const testTokenKey = "session-1:thirdweb_token"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(pageSize int) *config.Config {
	cfg := &config.Config{}
	cfg.Directory.PageSize = pageSize
	cfg.TokenStore.Key = config.DefaultTokenStorageKey

	return cfg
}

func testWallet(address string) entity.WalletInfo {
	return entity.WalletInfo{
		Address:   address,
		CreatedAt: "2024-01-01T00:00:00Z",
		Profiles:  []entity.Profile{{ID: "p-" + address, Type: "email"}},
	}
}

func testWallets(from, n int) []entity.WalletInfo {
	wallets := make([]entity.WalletInfo, 0, n)
	for i := from; i < from+n; i++ {
		wallets = append(wallets, testWallet(fmt.Sprintf("0x%040d", i)))
	}

	return wallets
}
