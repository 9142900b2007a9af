package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"backing_tracks/internal/domain/entities"
	"backing_tracks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const trackRequestsOwnerIndex = "owner_user_id-index"

type trackRequestItem struct {
	ID                 string          `dynamodbav:"id"`
	SongTitle          string          `dynamodbav:"song_title"`
	Artist             string          `dynamodbav:"artist,omitempty"`
	Notes              string          `dynamodbav:"notes,omitempty"`
	TrackType          string          `dynamodbav:"track_type"`
	BackingTypes       backingTypeList `dynamodbav:"backing_types,omitempty"`
	AdditionalServices []string        `dynamodbav:"additional_services,omitempty"`
	ManualFinalPrice   *float64        `dynamodbav:"manual_final_price,omitempty"`
	ManualEstimateLow  *float64        `dynamodbav:"manual_estimate_low,omitempty"`
	ManualEstimateHigh *float64        `dynamodbav:"manual_estimate_high,omitempty"`
	OwnerUserID        string          `dynamodbav:"owner_user_id,omitempty"`
	GuestAccessToken   string          `dynamodbav:"guest_access_token,omitempty"`
	OwnerEmail         string          `dynamodbav:"owner_email"`
	Status             string          `dynamodbav:"status"`
	CreatedAt          string          `dynamodbav:"created_at"`
	UpdatedAt          string          `dynamodbav:"updated_at"`
}

// TrackRequestDynamoRepository persists TrackRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_user_id-index (PK: owner_user_id)
//
// owner_user_id and guest_access_token are absent until set, so the
// claim and legacy-link writes can be guarded with attribute_not_exists.
type TrackRequestDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.ITrackRequestRepository = (*TrackRequestDynamoRepository)(nil)

func NewTrackRequestDynamoRepository(ddb DynamoAPI, tableName string) *TrackRequestDynamoRepository {
	return &TrackRequestDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *TrackRequestDynamoRepository) Create(ctx context.Context, tr entities.TrackRequest) (entities.TrackRequest, error) {
	av, err := attributevalue.MarshalMap(toTrackRequestItem(tr))
	if err != nil {
		return entities.TrackRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.TrackRequest{}, err
	}
	return tr, nil
}

func (r *TrackRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.TrackRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TrackRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.TrackRequest{}, nil
	}

	var it trackRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TrackRequest{}, err
	}
	return fromTrackRequestItem(it), nil
}

// ListByOwner returns the owner's requests, newest first.
func (r *TrackRequestDynamoRepository) ListByOwner(ctx context.Context, ownerUserID string) ([]entities.TrackRequest, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(trackRequestsOwnerIndex),
		KeyConditionExpression: aws.String("owner_user_id = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: ownerUserID},
		},
	})

	var items []entities.TrackRequest
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		decoded, err := decodeTrackRequests(page.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, decoded...)
	}
	sortNewestFirst(items)
	return items, nil
}

// ListAll scans the whole table for the operator dashboard, newest first.
func (r *TrackRequestDynamoRepository) ListAll(ctx context.Context) ([]entities.TrackRequest, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	var items []entities.TrackRequest
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		decoded, err := decodeTrackRequests(page.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, decoded...)
	}
	sortNewestFirst(items)
	return items, nil
}

// UpdateOptions replaces the priced options. Unset manual overrides and
// empty lists are removed from the item.
func (r *TrackRequestDynamoRepository) UpdateOptions(ctx context.Context, id string, opts entities.RequestOptions) (entities.TrackRequest, error) {
	return r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		var sets, removes []string
		vals := map[string]types.AttributeValue{
			":track_type": &types.AttributeValueMemberS{Value: string(opts.TrackType)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#track_type": "track_type",
			"#updated_at": "updated_at",
		}
		sets = append(sets, "#track_type = :track_type", "#updated_at = :updated_at")

		names["#backing_types"] = "backing_types"
		if len(opts.BackingTypes) > 0 {
			l := make([]types.AttributeValue, 0, len(opts.BackingTypes))
			for _, b := range opts.BackingTypes {
				l = append(l, &types.AttributeValueMemberS{Value: string(b)})
			}
			vals[":backing_types"] = &types.AttributeValueMemberL{Value: l}
			sets = append(sets, "#backing_types = :backing_types")
		} else {
			removes = append(removes, "#backing_types")
		}

		names["#additional_services"] = "additional_services"
		if len(opts.AdditionalServices) > 0 {
			l := make([]types.AttributeValue, 0, len(opts.AdditionalServices))
			for _, s := range opts.AdditionalServices {
				l = append(l, &types.AttributeValueMemberS{Value: string(s)})
			}
			vals[":additional_services"] = &types.AttributeValueMemberL{Value: l}
			sets = append(sets, "#additional_services = :additional_services")
		} else {
			removes = append(removes, "#additional_services")
		}

		manual := []struct {
			attr string
			v    *float64
		}{
			{"manual_final_price", opts.ManualFinalPrice},
			{"manual_estimate_low", opts.ManualEstimateLow},
			{"manual_estimate_high", opts.ManualEstimateHigh},
		}
		for _, m := range manual {
			names["#"+m.attr] = m.attr
			if m.v == nil {
				removes = append(removes, "#"+m.attr)
				continue
			}
			vals[":"+m.attr] = &types.AttributeValueMemberN{Value: floatToString(*m.v)}
			sets = append(sets, "#"+m.attr+" = :"+m.attr)
		}

		expr := "SET " + strings.Join(sets, ", ")
		if len(removes) > 0 {
			expr += " REMOVE " + strings.Join(removes, ", ")
		}
		return expr, "", vals, names
	})
}

func (r *TrackRequestDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.TrackRequestStatus) (entities.TrackRequest, error) {
	return r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, "", vals, names
	})
}

func (r *TrackRequestDynamoRepository) AssignOwner(ctx context.Context, id string, ownerUserID string) (entities.TrackRequest, error) {
	return r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #owner = :owner, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":owner":      &types.AttributeValueMemberS{Value: ownerUserID},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#owner":      "owner_user_id",
			"#updated_at": "updated_at",
		}
		return expr, "attribute_not_exists(#owner)", vals, names
	})
}

func (r *TrackRequestDynamoRepository) SetGuestAccessToken(ctx context.Context, id string, token string) (entities.TrackRequest, error) {
	return r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #token = :token, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":token":      &types.AttributeValueMemberS{Value: token},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#token":      "guest_access_token",
			"#updated_at": "updated_at",
		}
		return expr, "attribute_not_exists(#token)", vals, names
	})
}

func (r *TrackRequestDynamoRepository) update(ctx context.Context, id string, build updateBuilder) (entities.TrackRequest, error) {
	var it trackRequestItem
	ok, err := updateItem(ctx, r.ddb, r.tableName, id, r.now(), build, &it)
	if err != nil || !ok {
		return entities.TrackRequest{}, err
	}
	return fromTrackRequestItem(it), nil
}

func decodeTrackRequests(raw []map[string]types.AttributeValue) ([]entities.TrackRequest, error) {
	out := make([]entities.TrackRequest, 0, len(raw))
	for _, m := range raw {
		var it trackRequestItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		out = append(out, fromTrackRequestItem(it))
	}
	return out, nil
}

func sortNewestFirst(items []entities.TrackRequest) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}

func toTrackRequestItem(tr entities.TrackRequest) trackRequestItem {
	services := make([]string, 0, len(tr.Options.AdditionalServices))
	for _, s := range tr.Options.AdditionalServices {
		services = append(services, string(s))
	}
	return trackRequestItem{
		ID:                 tr.ID,
		SongTitle:          tr.SongTitle,
		Artist:             tr.Artist,
		Notes:              tr.Notes,
		TrackType:          string(tr.Options.TrackType),
		BackingTypes:       backingTypeList(tr.Options.BackingTypes),
		AdditionalServices: services,
		ManualFinalPrice:   tr.Options.ManualFinalPrice,
		ManualEstimateLow:  tr.Options.ManualEstimateLow,
		ManualEstimateHigh: tr.Options.ManualEstimateHigh,
		OwnerUserID:        tr.OwnerUserID,
		GuestAccessToken:   tr.GuestAccessToken,
		OwnerEmail:         tr.OwnerEmail,
		Status:             string(tr.Status),
		CreatedAt:          formatTime(tr.CreatedAt),
		UpdatedAt:          formatTime(tr.UpdatedAt),
	}
}

func fromTrackRequestItem(it trackRequestItem) entities.TrackRequest {
	return entities.TrackRequest{
		ID:        it.ID,
		SongTitle: it.SongTitle,
		Artist:    it.Artist,
		Notes:     it.Notes,
		Options: entities.RequestOptions{
			TrackType:          entities.TrackType(strings.ToLower(strings.TrimSpace(it.TrackType))),
			BackingTypes:       []entities.BackingType(it.BackingTypes),
			AdditionalServices: entities.NormalizeServices(it.AdditionalServices),
			ManualFinalPrice:   it.ManualFinalPrice,
			ManualEstimateLow:  it.ManualEstimateLow,
			ManualEstimateHigh: it.ManualEstimateHigh,
		},
		OwnerUserID:      it.OwnerUserID,
		GuestAccessToken: it.GuestAccessToken,
		OwnerEmail:       it.OwnerEmail,
		Status:           entities.TrackRequestStatus(it.Status),
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
