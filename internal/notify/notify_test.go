package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/teamboard/backend/internal/apperr"
	"github.com/teamboard/backend/internal/models"
)

func TestE164(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "01012345678", want: "+821012345678"},
		{in: "010-1234-5678", want: "+821012345678"},
		{in: " +14155550100 ", want: "+14155550100"},
		{in: "", wantErr: true},
		{in: "12ab", wantErr: true},
		{in: "+1", wantErr: true},
		{in: "+1415-555", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := E164(tt.in, "82")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type fakeMessages struct {
	sent []*openapi.CreateMessageParams
	err  error
}

func (f *fakeMessages) CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error) {
	f.sent = append(f.sent, params)
	if f.err != nil {
		return nil, f.err
	}
	return &openapi.ApiV2010Message{}, nil
}

func TestTwilioSender(t *testing.T) {
	api := &fakeMessages{}
	s := &TwilioSender{api: api, from: "+15005550006"}

	require.NoError(t, s.Send("+821012345678", "hello"))
	require.Len(t, api.sent, 1)
	assert.Equal(t, "+821012345678", *api.sent[0].To)
	assert.Equal(t, "+15005550006", *api.sent[0].From)
	assert.Equal(t, "hello", *api.sent[0].Body)

	api.err = errors.New("401 unauthorized")
	assert.ErrorContains(t, s.Send("+821012345678", "hello"), "401 unauthorized")
}

type users map[int]models.User

func (u users) FindByID(_ context.Context, id int) (*models.User, error) {
	user, ok := u[id]
	if !ok {
		return nil, apperr.NotFound("users.FindByID", "user not found")
	}
	return &user, nil
}

type message struct{ to, body string }

type recorder struct {
	sent []message
	err  error
}

func (r *recorder) Send(to, body string) error {
	r.sent = append(r.sent, message{to, body})
	return r.err
}

func TestProjectJoined(t *testing.T) {
	people := users{
		1: {ID: 1, Name: "Kim", Phone: "01012345678"},
		2: {ID: 2, Name: "Lee"},
		3: {ID: 3, Name: "Park", Phone: "not a phone"},
	}
	project := models.Project{ID: 5, Name: "capstone", OwnerID: 1}
	ctx := context.Background()

	t.Run("texts the owner", func(t *testing.T) {
		rec := &recorder{}
		NewJoinNotifier(people, rec, "82", zap.NewNop().Sugar()).ProjectJoined(ctx, project, 2)

		require.Len(t, rec.sent, 1)
		assert.Equal(t, message{"+821012345678", "[teamboard] Lee joined capstone"}, rec.sent[0])
	})

	t.Run("owner without phone", func(t *testing.T) {
		rec := &recorder{}
		owned := models.Project{ID: 6, Name: "side", OwnerID: 2}
		NewJoinNotifier(people, rec, "82", zap.NewNop().Sugar()).ProjectJoined(ctx, owned, 1)
		assert.Empty(t, rec.sent)
	})

	t.Run("disabled", func(t *testing.T) {
		assert.NotPanics(t, func() {
			NewJoinNotifier(people, nil, "82", zap.NewNop().Sugar()).ProjectJoined(ctx, project, 2)
		})
	})

	t.Run("failures are logged", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		logger := zap.New(core).Sugar()

		rec := &recorder{err: errors.New("twilio down")}
		NewJoinNotifier(people, rec, "82", logger).ProjectJoined(ctx, project, 2)

		bad := models.Project{ID: 7, Name: "odd", OwnerID: 3}
		NewJoinNotifier(people, rec, "82", logger).ProjectJoined(ctx, bad, 2)

		missing := models.Project{ID: 8, Name: "ghost", OwnerID: 99}
		NewJoinNotifier(people, rec, "82", logger).ProjectJoined(ctx, missing, 2)

		assert.Equal(t, 1, logs.FilterMessage("Join SMS failed").Len())
		assert.Equal(t, 2, logs.FilterMessage("Join SMS skipped").Len())
		assert.Len(t, rec.sent, 1, "only the valid number reaches the sender")
	})
}
