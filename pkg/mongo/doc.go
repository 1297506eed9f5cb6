// Package mongo manages the MongoDB connection that backs account storage.
//
// Configuration comes from MONGODB_* environment variables (see Config). New retries the
// initial connect-and-ping, which smooths over a database container that starts after the app.
//
//	var cfg mongo.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Client().Disconnect(context.Background())
//
//	check := mongo.Healthcheck(db.Client())
//
// Connection failures match ErrFailedToConnectToMongo with errors.Is.
package mongo
