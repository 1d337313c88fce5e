// Package tlscert writes a self-signed CA and a server certificate for
// running the web server over TLS without an external authority.
package tlscert

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"math/big"
	"net"
	"os"
	"time"
)

const (
	keyBits  = 2048
	validity = 10
)

var ErrCertExists = errors.New("certificate already exists")

var subject = pkix.Name{
	Organization: []string{"Truco Server"},
	Country:      []string{"AR"},
}

// Missing reports whether either file is absent.
func Missing(certPath string, keyPath string) bool {
	for _, p := range []string{certPath, keyPath} {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			return true
		}
	}
	return false
}

// Generate writes a certificate valid for hosts (IPs or DNS names) signed by
// a throwaway CA. Loopback addresses are used when hosts is empty.
func Generate(certPath string, keyPath string, hosts []string) error {
	if !Missing(certPath, keyPath) {
		return ErrCertExists
	}
	certPEM, keyPEM, err := newPair(hosts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(certPath, certPEM, 0o600); err != nil {
		return err
	}
	return os.WriteFile(keyPath, keyPEM, 0o600)
}

func newPair(hosts []string) (certPEM []byte, keyPEM []byte, err error) {
	now := time.Now()
	ca := &x509.Certificate{
		SerialNumber:          serial(),
		Subject:               subject,
		NotBefore:             now,
		NotAfter:              now.AddDate(validity, 0, 0),
		IsCA:                  true,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth, x509.ExtKeyUsageServerAuth},
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
	}
	caKey, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return nil, nil, err
	}

	cert := &x509.Certificate{
		SerialNumber: serial(),
		Subject:      subject,
		NotBefore:    now,
		NotAfter:     now.AddDate(validity, 0, 0),
		SubjectKeyId: []byte{1, 2, 3, 4, 6},
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth, x509.ExtKeyUsageServerAuth},
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}
	for _, h := range hosts {
		if ip := net.ParseIP(h); ip != nil {
			cert.IPAddresses = append(cert.IPAddresses, ip)
		} else if h != "" {
			cert.DNSNames = append(cert.DNSNames, h)
		}
	}
	if len(cert.IPAddresses) == 0 && len(cert.DNSNames) == 0 {
		cert.IPAddresses = []net.IP{net.IPv4(127, 0, 0, 1), net.IPv6loopback}
	}
	certKey, err := rsa.GenerateKey(rand.Reader, keyBits)
	if err != nil {
		return nil, nil, err
	}
	der, err := x509.CreateCertificate(rand.Reader, cert, ca, &certKey.PublicKey, caKey)
	if err != nil {
		return nil, nil, err
	}

	certBuf := new(bytes.Buffer)
	if err := pem.Encode(certBuf, &pem.Block{Type: "CERTIFICATE", Bytes: der}); err != nil {
		return nil, nil, err
	}
	keyBuf := new(bytes.Buffer)
	err = pem.Encode(keyBuf, &pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(certKey),
	})
	if err != nil {
		return nil, nil, err
	}
	return certBuf.Bytes(), keyBuf.Bytes(), nil
}

func serial() *big.Int {
	limit := new(big.Int).Lsh(big.NewInt(1), 62)
	i, err := rand.Int(rand.Reader, limit)
	if err != nil {
		panic(err)
	}
	return i
}
