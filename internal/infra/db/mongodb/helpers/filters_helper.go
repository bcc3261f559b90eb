package helpers

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BuildOwnedMonthFilter matches documents whose id is in ids and whose
// month lies in from..to. Months are YYYY-MM-01 strings, so the string
// comparison is also a chronological one.
func BuildOwnedMonthFilter(ids []primitive.ObjectID, from string, to string) bson.M {
	filter := bson.M{
		"_id": bson.M{"$in": ids},
	}

	month := bson.M{}
	if from != "" {
		month["$gte"] = from
	}
	if to != "" {
		month["$lte"] = to
	}
	if len(month) > 0 {
		filter["month"] = month
	}

	return filter
}
