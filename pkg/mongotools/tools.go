package mongotools

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func FilterByID(id string) bson.M {
	return bson.M{"_id": id}
}

// Upsert makes ReplaceOne insert the replacement when nothing matches.
func Upsert() *options.ReplaceOptions {
	return options.Replace().SetUpsert(true)
}
