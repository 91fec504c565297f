package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	helper "github.com/lintang-b-s/speedmodel/pkg/http/router/routerhelper"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

type speedAPI struct {
	speedService SpeedService
	log          *zap.Logger
}

func New(speedService SpeedService, log *zap.Logger) *speedAPI {
	return &speedAPI{
		speedService: speedService,
		log:          log,
	}

}

func (api *speedAPI) Routes(group *helper.RouteGroup) {
	group.POST("/resolveSpeed", api.resolveSpeed)
	group.GET("/maxWeightSpeed/:vehicle", api.maxWeightSpeed)
}

// resolveSpeed godoc
// @Summary		resolve the weight and eta speed of one road segment for a vehicle model.
// @Description	resolve the weight and eta speed of one road segment for a vehicle model, honoring the posted maxspeed and surface tags.
// @Tags			speed
// @ID resolve-speed
// @Param			body	body	resolveSpeedRequest	true
// @Accept			application/json
// @Produce		application/json
// @Router			/api/resolveSpeed [post]
// @Success		200	{object}	resolveSpeedResponse
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *speedAPI) resolveSpeed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request resolveSpeedRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	forward := request.Direction != "backward"

	speed, oneWay, passThrough, err := api.speedService.ResolveSpeed(request.Vehicle, request.Tags,
		forward, request.InCity, request.Maxspeed.ToMaxspeed())
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewResolveSpeedResponse(speed, oneWay,
		passThrough)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// maxWeightSpeed godoc
// @Summary		maximum weight speed and offroad speed of one vehicle model.
// @Description	maximum weight speed over every speed-table entry of the vehicle model, plus its offroad fallback speed.
// @Tags			speed
// @ID max-weight-speed
// @Param			vehicle	path	string	true	"vehicle type (car, pedestrian, bicycle)"
// @Produce		application/json
// @Router			/api/maxWeightSpeed/{vehicle} [get]
// @Success		200	{object}	maxWeightSpeedResponse
// @Failure		404	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *speedAPI) maxWeightSpeed(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	vehicle := p.ByName("vehicle")

	maxWeightSpeed, offroadSpeed, err := api.speedService.MaxWeightSpeed(vehicle)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewMaxWeightSpeedResponse(vehicle,
		maxWeightSpeed, offroadSpeed)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs := err.(validator.ValidationErrors)
	for _, e := range validatorErrs {
		translatedErr := errors.New(e.Translate(trans))
		errs = append(errs, translatedErr)
	}
	return errs
}
