// Package tlscert готовит пару сертификат/ключ для HTTPS сервера.
//
// Если файлы отсутствуют, пусты или сертификат просрочен, генерируется
// самоподписанный сертификат для перечисленных хостов.
package tlscert

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"time"
)

// Ошибки проверки пары.
var (
	ErrBlankPEM        = errors.New("pem is blank")
	ErrCertExpired     = errors.New("certificate is expired")
	ErrCertNotValidYet = errors.New("certificate is not valid yet")
)

// DefaultValidFor срок действия сгенерированного сертификата.
const DefaultValidFor = 365 * 24 * time.Hour

// Options параметры пары.
type Options struct {
	CertFile string
	KeyFile  string
	// Hosts DNS имена и IP адреса, на которые выписывается сертификат.
	Hosts    []string
	ValidFor time.Duration
}

// Ensure проверяет пару по путям из opts и перевыпускает ее, если она отсутствует,
// пуста или просрочена. Прочие ошибки проверки (битый PEM, несовпадение ключа)
// возвращаются как есть: чужие файлы не перезаписываются.
func Ensure(opts Options) error {
	certPEM, errCert := readIfExists(opts.CertFile)
	if errCert != nil {
		return errCert
	}
	keyPEM, errKey := readIfExists(opts.KeyFile)
	if errKey != nil {
		return errKey
	}

	err := Check(certPEM, keyPEM, time.Now())
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrBlankPEM), errors.Is(err, ErrCertExpired):
	default:
		return fmt.Errorf("check certificate pair: %w", err)
	}

	validFor := opts.ValidFor
	if validFor <= 0 {
		validFor = DefaultValidFor
	}
	certPEM, keyPEM, err = Generate(opts.Hosts, time.Now(), validFor)
	if err != nil {
		return err
	}
	if err := writeFile(opts.CertFile, certPEM); err != nil {
		return err
	}
	return writeFile(opts.KeyFile, keyPEM)
}

// Check проверяет, что PEM данные образуют пару сертификат/ключ, действующую в момент now.
func Check(certPEM, keyPEM []byte, now time.Time) error {
	if len(certPEM) == 0 || len(keyPEM) == 0 {
		return ErrBlankPEM
	}
	pair, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return fmt.Errorf("load key pair: %w", err)
	}
	cert, err := x509.ParseCertificate(pair.Certificate[0])
	if err != nil {
		return fmt.Errorf("parse certificate: %w", err)
	}
	if now.Before(cert.NotBefore) {
		return ErrCertNotValidYet
	}
	if now.After(cert.NotAfter) {
		return ErrCertExpired
	}
	return nil
}

// Generate выпускает самоподписанный ECDSA P-256 сертификат.
//
// Параметры:
//   - hosts: DNS имена и IP адреса; пустой список означает localhost
//   - notBefore: начало срока действия
//   - validFor: длительность срока действия
//
// Возвращает:
//   - []byte: сертификат в PEM
//   - []byte: приватный ключ в PEM
//   - error: ошибка генерации
func Generate(hosts []string, notBefore time.Time, validFor time.Duration) ([]byte, []byte, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generate private key: %w", err)
	}
	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128)) //nolint:mnd
	if err != nil {
		return nil, nil, fmt.Errorf("generate serial number: %w", err)
	}

	tpl := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{Organization: []string{"shortlinks"}},
		NotBefore:             notBefore,
		NotAfter:              notBefore.Add(validFor),
		KeyUsage:              x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
	}
	if len(hosts) == 0 {
		hosts = []string{"localhost", "127.0.0.1", "::1"}
	}
	for _, h := range hosts {
		if ip := net.ParseIP(h); ip != nil {
			tpl.IPAddresses = append(tpl.IPAddresses, ip)
		} else {
			tpl.DNSNames = append(tpl.DNSNames, h)
		}
	}

	der, err := x509.CreateCertificate(rand.Reader, tpl, tpl, &key.PublicKey, key)
	if err != nil {
		return nil, nil, fmt.Errorf("create certificate: %w", err)
	}
	keyDER, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal private key: %w", err)
	}

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})
	return certPEM, keyPEM, nil
}

func readIfExists(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil { //nolint:mnd
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
