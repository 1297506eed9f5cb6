// Package account manages a user's stored TOTP accounts.
//
// Service ties the pieces together: it validates new accounts, encrypts their
// secrets with a Cipher before they reach a Repository, decrypts them on the way
// out and computes the current codes for every account of a user at one instant.
//
// Two repositories ship with the package: MongoRepository for production and
// NewMemoryRepository for tests and local tooling.
//
// # Usage
//
//	cipher, err := secrets.Default()
//	if err != nil {
//	    return err
//	}
//	svc := account.NewService(account.NewMongoRepository(db), cipher,
//	    account.WithLogger(log),
//	)
//
//	acc, err := svc.Create(ctx, userID, account.CreateInput{
//	    Name:   "alice@example.com",
//	    Issuer: "GitHub",
//	    Secret: "jbsw y3dp ehpk 3pxp",
//	    Tags:   []string{"work"},
//	})
//
//	codes, err := svc.Codes(ctx, userID, time.Now())
//	for _, c := range codes {
//	    if c.Err != nil {
//	        fmt.Println(c.Account.Name, totp.Placeholder)
//	        continue
//	    }
//	    fmt.Println(c.Account.Name, c.Current, c.TimeRemaining)
//	}
//
// # Error Handling
//
// Validation failures return ErrMissingName, ErrMissingIssuer, ErrInvalidPeriod or
// ErrInvalidSecret (joined with totp.ErrInvalidSecret). Missing records return ErrNotFound.
// Cipher errors are returned unchanged, so callers can test for secrets.ErrEncryption
// and secrets.ErrDecryption. List is the exception: it skips records that fail to decrypt
// and logs their ids instead.
package account
